package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"boothdesk/config"
	"boothdesk/infras/credstore"
	"boothdesk/internal/domains/booth/model"
	"boothdesk/internal/domains/booth/model/dto"
	boothadminService "boothdesk/internal/domains/boothadmin/service"
	directoryService "boothdesk/internal/domains/directory/service"
	sessionService "boothdesk/internal/domains/session/service"
)

// CLI is the terminal presentation over the view-models. Each command maps
// onto one view-model operation; rendering is a plain dump of the resulting
// snapshot.
type CLI struct {
	cfg       *config.Config
	store     credstore.Store
	guard     sessionService.Guard
	directory directoryService.Directory
	admin     boothadminService.Manager
	out       io.Writer
}

func New(
	cfg *config.Config,
	store credstore.Store,
	guard sessionService.Guard,
	directory directoryService.Directory,
	admin boothadminService.Manager,
) *CLI {
	return &CLI{
		cfg:       cfg,
		store:     store,
		guard:     guard,
		directory: directory,
		admin:     admin,
		out:       os.Stdout,
	}
}

func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.usage()

		return errors.New("missing command")
	}

	switch args[0] {
	case "booths":
		return c.booths(ctx)
	case "watch":
		return c.watch(ctx)
	case "book":
		return c.book(ctx, args[1:])
	case "login":
		return c.login(ctx, args[1:])
	case "logout":
		c.guard.Logout()
		fmt.Fprintln(c.out, "Logged out.") // nolint:errcheck

		return nil
	case "admin":
		return c.adminCommand(ctx, args[1:])
	case "lang":
		return c.lang(args[1:])
	default:
		c.usage()

		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (c *CLI) usage() {
	fmt.Fprint(c.out, `usage: boothdesk <command>

  booths                       list booths once
  watch                        poll and print the booth list until interrupted
  book <number>                submit a booking request for a booth
  login <username> <password>  validate and store admin credentials
  logout                       clear stored admin credentials
  admin list                   list booths with contact details
  admin create [flags]         create a booth
  admin update <id> [flags]    update a booth
  admin delete <id>            delete a booth (asks for confirmation)
  admin upload <file>          upload a logo, printing the hosted url
  admin requests [-booth N]    list booking requests
  lang [code]                  show or set the preferred language
`) // nolint:errcheck
}

func (c *CLI) booths(ctx context.Context) error {
	c.directory.Refresh(ctx)

	state := c.directory.Snapshot()
	if state.Error != "" {
		return errors.New(state.Error)
	}

	c.printBooths(state.Booths, false)

	return nil
}

// watch keeps the directory polling and reprints the list after every tick
// until the context is cancelled.
func (c *CLI) watch(ctx context.Context) error {
	c.directory.Start(ctx)
	defer c.directory.Stop()

	interval := time.Duration(c.cfg.Directory.PollIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = 10 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			state := c.directory.Snapshot()
			if state.Error != "" {
				fmt.Fprintf(c.out, "! %s\n", state.Error) // nolint:errcheck

				continue
			}

			c.printBooths(state.Booths, false)
		}
	}
}

func (c *CLI) book(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: book <number>")
	}

	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid booth number %q", args[0])
	}

	c.directory.Refresh(ctx)

	state := c.directory.Snapshot()
	if state.Error != "" {
		return errors.New(state.Error)
	}

	booth, ok := findByNumber(state.Booths, number)
	if !ok {
		return fmt.Errorf("no booth with number %d", number)
	}

	if booth.Occupied() {
		return fmt.Errorf("booth %d is already occupied", number)
	}

	c.directory.Book(ctx, booth)

	if state = c.directory.Snapshot(); state.Error != "" {
		return errors.New(state.Error)
	}

	return nil
}

func (c *CLI) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: login <username> <password>")
	}

	if err := c.guard.Login(ctx, args[0], args[1]); err != nil {
		return err // nolint:wrapcheck
	}

	fmt.Fprintln(c.out, "Logged in.") // nolint:errcheck

	return nil
}

func (c *CLI) adminCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: admin <list|create|update|delete|upload|requests>")
	}

	switch args[0] {
	case "list":
		return c.adminList(ctx)
	case "create":
		return c.adminCreate(ctx, args[1:])
	case "update":
		return c.adminUpdate(ctx, args[1:])
	case "delete":
		return c.adminDelete(ctx, args[1:])
	case "upload":
		return c.adminUpload(ctx, args[1:])
	case "requests":
		return c.adminRequests(ctx, args[1:])
	default:
		return fmt.Errorf("unknown admin command %q", args[0])
	}
}

func (c *CLI) adminList(ctx context.Context) error {
	if err := c.admin.Refresh(ctx); err != nil {
		return err // nolint:wrapcheck
	}

	c.printBooths(c.admin.Snapshot().Booths, true)

	return nil
}

func (c *CLI) adminCreate(ctx context.Context, args []string) error {
	form, err := parseForm("admin create", args, dto.BoothForm{})
	if err != nil {
		return err
	}

	if err := c.admin.Create(ctx, *form); err != nil {
		return err // nolint:wrapcheck
	}

	fmt.Fprintf(c.out, "Created booth %d.\n", form.Number) // nolint:errcheck

	return nil
}

func (c *CLI) adminUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: admin update <id> [flags]")
	}

	booth, err := c.findByID(ctx, args[0])
	if err != nil {
		return err
	}

	form, err := parseForm("admin update", args[1:], dto.FormFromBooth(booth))
	if err != nil {
		return err
	}

	if err := c.admin.Update(ctx, booth, *form); err != nil {
		return err // nolint:wrapcheck
	}

	fmt.Fprintf(c.out, "Updated booth %d.\n", booth.Number) // nolint:errcheck

	return nil
}

func (c *CLI) adminDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: admin delete <id>")
	}

	booth, err := c.findByID(ctx, args[0])
	if err != nil {
		return err
	}

	return c.admin.Delete(ctx, booth) // nolint:wrapcheck
}

func (c *CLI) adminUpload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: admin upload <file>")
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read logo file: %w", err)
	}

	url, err := c.admin.UploadLogo(ctx, filepath.Base(args[0]), raw)
	if err != nil {
		return err // nolint:wrapcheck
	}

	fmt.Fprintln(c.out, url) // nolint:errcheck

	return nil
}

func (c *CLI) adminRequests(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("admin requests", flag.ContinueOnError)
	boothNumber := flags.Int("booth", 0, "only requests for this booth number")

	if err := flags.Parse(args); err != nil {
		return err // nolint:wrapcheck
	}

	var filter *int
	if *boothNumber > 0 {
		filter = boothNumber
	}

	requests, err := c.admin.Requests(ctx, filter)
	if err != nil {
		return err // nolint:wrapcheck
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BOOTH\tNAME\tCREATED") // nolint:errcheck

	for _, r := range requests {
		fmt.Fprintf(w, "%d\t%s\t%s\n", r.BoothNumber, r.BoothName, r.CreatedAt.Format(time.RFC3339)) // nolint:errcheck
	}

	return w.Flush() // nolint:wrapcheck
}

func (c *CLI) lang(args []string) error {
	switch len(args) {
	case 0:
		fmt.Fprintln(c.out, c.store.Language()) // nolint:errcheck

		return nil
	case 1:
		c.store.SaveLanguage(args[0])

		return nil
	default:
		return errors.New("usage: lang [code]")
	}
}

func (c *CLI) findByID(ctx context.Context, id string) (model.Booth, error) {
	if err := c.admin.Refresh(ctx); err != nil {
		return model.Booth{}, err // nolint:wrapcheck
	}

	for _, b := range c.admin.Snapshot().Booths {
		if b.ID == id {
			return b, nil
		}
	}

	return model.Booth{}, fmt.Errorf("no booth with id %q", id)
}

func (c *CLI) printBooths(booths []model.Booth, withContacts bool) {
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)

	if withContacts {
		fmt.Fprintln(w, "ID\tNUMBER\tCATEGORY\tSTATUS\tCOMPANY\tCONTACT") // nolint:errcheck

		for _, b := range booths {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n", b.ID, b.Number, b.Category, b.Status, b.CompanyName, b.ContactEmail) // nolint:errcheck
		}
	} else {
		fmt.Fprintln(w, "NUMBER\tCATEGORY\tSTATUS\tCOMPANY") // nolint:errcheck

		for _, b := range booths {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", b.Number, b.Category, b.Status, b.CompanyName) // nolint:errcheck
		}
	}

	w.Flush() // nolint:errcheck
}

// parseForm fills a booth form from command flags on top of the given
// defaults, so an update only overrides what the user passed.
func parseForm(name string, args []string, defaults dto.BoothForm) (*dto.BoothForm, error) {
	form := defaults

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.IntVar(&form.Number, "number", form.Number, "booth number")
	flags.StringVar(&form.Category, "category", form.Category, "diamond, gold, silver or other")
	flags.StringVar(&form.Status, "status", form.Status, "empty or occupied")
	flags.StringVar(&form.CompanyName, "company", form.CompanyName, "company name")
	flags.StringVar(&form.CompanyWebsite, "website", form.CompanyWebsite, "company website")
	flags.StringVar(&form.CompanyShortText, "text", form.CompanyShortText, "short company description")
	flags.StringVar(&form.ContactName, "contact", form.ContactName, "contact name")
	flags.StringVar(&form.ContactPhone, "phone", form.ContactPhone, "contact phone")
	flags.StringVar(&form.ContactEmail, "email", form.ContactEmail, "contact email")
	flags.StringVar(&form.CompanyLogoURL, "logo-url", form.CompanyLogoURL, "hosted logo url")

	if err := flags.Parse(args); err != nil {
		return nil, err // nolint:wrapcheck
	}

	return &form, nil
}

func findByNumber(booths []model.Booth, number int) (model.Booth, bool) {
	for _, b := range booths {
		if b.Number == number {
			return b, true
		}
	}

	return model.Booth{}, false
}
