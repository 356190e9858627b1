package main

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/dilshat/lead-store/controller"
	"github.com/dilshat/lead-store/dao"
	"github.com/dilshat/lead-store/model"
	"github.com/dilshat/lead-store/service/dto"
)

type usageError struct {
	message string
}

func (e *usageError) Error() string {
	return e.message
}

// lockedWriter lets notices printed by the hub share out with the console.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// console is the terminal rendition of the landing page and admin panel.
type console struct {
	intake  *controller.Intake
	admin   *controller.Admin
	session dao.SessionDao
	out     io.Writer
}

func (c *console) dispatch(args []string) error {
	if len(args) == 0 {
		return &usageError{"missing command"}
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "submit":
		if len(rest) != 3 {
			return &usageError{"submit needs name, email and phone"}
		}
		sub, err := c.intake.Submit(dto.Form{Name: rest[0], Email: rest[1], Phone: rest[2]})
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, sub.Id)
		return nil

	case "list":
		filter := model.All
		if len(rest) > 0 {
			var err error
			if filter, err = model.ParseFilter(strings.Join(rest, " ")); err != nil {
				return &usageError{err.Error()}
			}
		}
		subs, err := c.admin.Responses(filter)
		if err != nil {
			return err
		}
		c.printSubmissions(subs)
		return nil

	case "status":
		if len(rest) < 2 {
			return &usageError{"status needs an id and a status"}
		}
		status, err := model.ParseStatus(strings.Join(rest[1:], " "))
		if err != nil {
			return &usageError{err.Error()}
		}
		_, err = c.admin.SetStatus(rest[0], status)
		return err

	case "stats":
		stats, err := c.admin.Stats()
		if err != nil {
			return err
		}
		c.printStats(stats)
		return nil

	case "dashboard":
		dash, err := c.admin.Dashboard()
		if err != nil {
			return err
		}
		c.printStats(dash.Stats)
		fmt.Fprintln(c.out)
		c.printSubmissions(dash.Recent)
		return nil

	case "session":
		if len(rest) != 1 || (rest[0] != "on" && rest[0] != "off") {
			return &usageError{"session needs on or off"}
		}
		return c.session.SetAuthenticated(rest[0] == "on")
	}

	return &usageError{"unknown command " + cmd}
}

func (c *console) printStats(stats model.Stats) {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Total\t%d\n", stats.Total)
	fmt.Fprintf(w, "%s\t%d\n", model.Pending.Label(), stats.Pending)
	fmt.Fprintf(w, "%s\t%d\n", model.InConversation.Label(), stats.InConversation)
	fmt.Fprintf(w, "%s\t%d\n", model.Approved.Label(), stats.Approved)
	w.Flush()
}

func (c *console) printSubmissions(subs []model.Submission) {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOME\tEMAIL\tTELEFONE\tSTATUS\tDATA")
	for _, s := range subs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", s.Id, s.Name, s.Email, s.Phone, s.Status.Label(), s.CreatedDate)
	}
	w.Flush()
}
