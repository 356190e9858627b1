package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dilshat/lead-store/config"
	"github.com/dilshat/lead-store/controller"
	"github.com/dilshat/lead-store/dao"
	"github.com/dilshat/lead-store/log"
	"github.com/dilshat/lead-store/notify"
	"github.com/dilshat/lead-store/service"
	"golang.org/x/time/rate"
)

const usage = `usage: leads <command> [args]

commands:
  submit <name> <email> <phone>   send the landing page form
  list [all|pendente|em conversa|aprovado]
  status <id> <pendente|em conversa|aprovado>
  stats
  dashboard
  session <on|off>                toggle the admin session flag
`

func main() {
	cfg, cfgErr := config.Load()

	_, flush, err := log.New(cfg.LogLevel)
	if err != nil {
		_, flush, _ = log.New("info")
		log.WarnIfErr("Bad LOG_LEVEL, using info", err)
	}
	if cfgErr != nil {
		log.Fatal("Error loading config", cfgErr)
	}

	err = run(cfg, os.Args[1:], os.Stdout)
	if err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprint(os.Stderr, usage)
		}
		log.ErrIfErr("Command failed", err)
		flush()
		os.Exit(1)
	}
	flush()
}

// run wires the store for one session and executes a single command.
func run(cfg config.Config, args []string, out io.Writer) error {
	//create db client
	dbClient, err := dao.NewClient(cfg.DbPath, cfg.DbTimeout)
	if err != nil {
		return err
	}
	defer func() {
		log.WarnIfErr("Error closing database", dbClient.Close())
	}()

	out = &lockedWriter{w: out}
	hub := notify.NewHub(cfg.NoticeBuffer)
	hub.Consume(notify.Printer(out))
	defer hub.Close()

	store := service.NewStore(dao.NewSubmissionDao(dbClient), service.WithLocation(cfg.Location()))
	sessionDao := dao.NewSessionDao(dbClient)

	var throttle controller.Throttle
	if cfg.IntakeRate > 0 {
		throttle = service.NewThrottle(rate.Limit(cfg.IntakeRate), cfg.IntakeBurst, dao.NewThrottleDao(dbClient), nil)
	}

	c := &console{
		intake:  controller.NewIntake(store, hub, throttle),
		admin:   controller.NewAdmin(store, sessionDao, hub),
		session: sessionDao,
		out:     out,
	}

	return c.dispatch(args)
}
