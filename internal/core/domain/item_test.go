package domain

import "testing"

func TestItem_EditableBy(t *testing.T) {
	item := Item{ID: "e1", Type: TypeEvent, UserID: "u1"}

	cases := []struct {
		name string
		user *User
		want bool
	}{
		{"owner", &User{ID: "u1"}, true},
		{"admin non-owner", &User{ID: "u2", Role: RoleAdmin}, true},
		{"other student", &User{ID: "u2", Role: RoleStudent}, false},
		{"unknown role non-owner", &User{ID: "u2", Role: "moderator"}, false},
		{"nil user", nil, false},
	}
	for _, tc := range cases {
		if got := item.EditableBy(tc.user); got != tc.want {
			t.Errorf("%s: EditableBy = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestResources_Categories(t *testing.T) {
	academic := Resources(CategoryAcademic)
	financial := Resources(CategoryFinancial)
	all := Resources("")

	if len(academic) == 0 || len(financial) == 0 {
		t.Fatalf("expected entries in both categories")
	}
	if len(all) != len(academic)+len(financial) {
		t.Fatalf("catalog split does not add up: %d != %d + %d", len(all), len(academic), len(financial))
	}
	for _, r := range academic {
		if r.Category != CategoryAcademic {
			t.Errorf("%s filed under %s", r.Title, r.Category)
		}
	}
}
