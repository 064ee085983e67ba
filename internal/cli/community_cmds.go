package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/student-support/supportctl/internal/core/ports"
)

func (a *App) cmdEvents(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		items, err := a.community.ListEvents(ctx)
		if err != nil {
			return err
		}
		printItems(a.out, items, a.session.Current())
		return nil

	case "create":
		fs := flag.NewFlagSet("events create", flag.ContinueOnError)
		fs.SetOutput(a.errOut)
		title := fs.String("title", "", "event title")
		description := fs.String("description", "", "what the event is about")
		date := fs.String("date", "", "when the event happens")
		if err := fs.Parse(args); err != nil {
			return err
		}
		item, err := a.community.CreateEvent(ctx, ports.EventInput{
			Title:       *title,
			Description: *description,
			Date:        *date,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Created event %s\n", item.ID)
		return nil

	case "update":
		fs := flag.NewFlagSet("events update", flag.ContinueOnError)
		fs.SetOutput(a.errOut)
		id := fs.String("id", "", "event id")
		title := fs.String("title", "", "new title (unchanged when empty)")
		description := fs.String("description", "", "new description (unchanged when empty)")
		date := fs.String("date", "", "new date (unchanged when empty)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		item, err := a.community.GetEvent(ctx, *id)
		if err != nil {
			return err
		}
		// Flags left empty keep the current value, so the edit form only
		// needs the fields that change.
		in := ports.EventInput{
			Title:       orDefault(*title, item.Title),
			Description: orDefault(*description, item.Description),
			Date:        orDefault(*date, item.Date),
		}
		updated, err := a.community.UpdateEvent(ctx, *item, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Updated event %s\n", updated.ID)
		return nil

	case "delete":
		fs := flag.NewFlagSet("events delete", flag.ContinueOnError)
		fs.SetOutput(a.errOut)
		id := fs.String("id", "", "event id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		item, err := a.community.GetEvent(ctx, *id)
		if err != nil {
			return err
		}
		if err := a.community.DeleteEvent(ctx, *item); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Deleted event %s\n", item.ID)
		return nil

	default:
		return fmt.Errorf("unknown events subcommand %q (want list, create, update, or delete)", sub)
	}
}

func (a *App) cmdPosts(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		items, err := a.community.ListPosts(ctx)
		if err != nil {
			return err
		}
		printItems(a.out, items, a.session.Current())
		return nil

	case "create":
		fs := flag.NewFlagSet("posts create", flag.ContinueOnError)
		fs.SetOutput(a.errOut)
		title := fs.String("title", "", "post title")
		content := fs.String("content", "", "post body")
		if err := fs.Parse(args); err != nil {
			return err
		}
		item, err := a.community.CreatePost(ctx, ports.PostInput{Title: *title, Content: *content})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Created post %s\n", item.ID)
		return nil

	case "update":
		fs := flag.NewFlagSet("posts update", flag.ContinueOnError)
		fs.SetOutput(a.errOut)
		id := fs.String("id", "", "post id")
		title := fs.String("title", "", "new title (unchanged when empty)")
		content := fs.String("content", "", "new body (unchanged when empty)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		item, err := a.community.GetPost(ctx, *id)
		if err != nil {
			return err
		}
		in := ports.PostInput{
			Title:   orDefault(*title, item.Title),
			Content: orDefault(*content, item.Content),
		}
		updated, err := a.community.UpdatePost(ctx, *item, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Updated post %s\n", updated.ID)
		return nil

	case "delete":
		fs := flag.NewFlagSet("posts delete", flag.ContinueOnError)
		fs.SetOutput(a.errOut)
		id := fs.String("id", "", "post id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		item, err := a.community.GetPost(ctx, *id)
		if err != nil {
			return err
		}
		if err := a.community.DeletePost(ctx, *item); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Deleted post %s\n", item.ID)
		return nil

	default:
		return fmt.Errorf("unknown posts subcommand %q (want list, create, update, or delete)", sub)
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
