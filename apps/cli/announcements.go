package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/umairnumplate/noor-ul-masajid/core/announcement"
)

func (cli *commandLine) announceCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "announce", Short: "Manage the notice board"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List announcements, newest first",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			anns, err := cli.svc.Announcements.QueryAll()
			if err != nil {
				return err
			}
			cli.printAnnouncements(anns)
			return nil
		},
	}

	var na announcement.NewAnnouncement
	add := &cobra.Command{
		Use:   "add",
		Short: "Post an announcement",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return cli.postAnnouncement(na)
		},
	}
	add.Flags().StringVar(&na.Title, "title", "", "headline")
	add.Flags().StringVar(&na.Content, "content", "", "announcement text")

	var post bool
	generate := &cobra.Command{
		Use:   "generate TOPIC...",
		Short: "Draft an announcement about a topic with the assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			draft, err := cli.svc.Announcements.Generate(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			cli.println(titleStyle.Render(draft.Title))
			cli.println(draft.Content)
			if !post {
				return nil
			}
			return cli.postAnnouncement(announcement.NewAnnouncement{Title: draft.Title, Content: draft.Content})
		},
	}
	generate.Flags().BoolVar(&post, "post", false, "post the draft right away")

	var to []string
	publish := &cobra.Command{
		Use:   "publish ID",
		Short: "Mail an announcement to the configured recipients",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(to) == 0 {
				to = cli.svc.Config.Email.Recipients
			}
			if err := cli.svc.Announcements.Publish(args[0], to); err != nil {
				return err
			}
			cli.printf("announcement %s sent to %s\n", args[0], pluralize(len(to), "recipient"))
			return nil
		},
	}
	publish.Flags().StringSliceVar(&to, "to", nil, "recipients (default email.recipients)")

	del := &cobra.Command{
		Use:   "delete ID...",
		Short: "Delete announcements",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, id := range args {
				if _, err := cli.svc.Announcements.GetByID(id); err != nil {
					return fmt.Errorf("%w: %q", err, id)
				}
			}
			if err := cli.confirm("Delete " + pluralize(len(args), "announcement") + "?"); err != nil {
				return err
			}
			if err := cli.svc.Announcements.Delete(args...); err != nil {
				return err
			}
			cli.printf("%s deleted\n", pluralize(len(args), "announcement"))
			return nil
		},
	}

	cmd.AddCommand(list, add, generate, publish, del)
	return cmd
}

func (cli *commandLine) postAnnouncement(na announcement.NewAnnouncement) error {
	if err := na.Validate(cli.svc.Validate); err != nil {
		return err
	}
	a, err := cli.svc.Announcements.Create(na)
	if err != nil {
		return err
	}
	cli.printf("announcement %s posted\n", a.ID)
	return nil
}

func (cli *commandLine) printAnnouncements(anns []announcement.Announcement) {
	if len(anns) == 0 {
		cli.println(mutedStyle.Render("no announcements"))
		return
	}
	for _, a := range anns {
		cli.printf("%s  %s\n", titleStyle.Render(a.Title), mutedStyle.Render(a.Date.Format("Jan 2, 2006")+" · "+a.ID))
		cli.println(a.Content)
		cli.println()
	}
}
