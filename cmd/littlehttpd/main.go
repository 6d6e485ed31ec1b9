package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sevlyar/go-daemon"
	"github.com/spf13/pflag"

	"dqx0.com/go/littlehttpd/httpd"
	"dqx0.com/go/littlehttpd/internal/listen"
	"dqx0.com/go/littlehttpd/internal/obs"
	"dqx0.com/go/littlehttpd/internal/privsep"
)

const usage = "Usage: %s [--port=N] [--chroot --user=N --group=N] [--debug] [--confine] <docroot>\n"

const shutdownTimeout = 5 * time.Second

type options struct {
	port     string
	chroot   bool
	user     string
	group    string
	debug    bool
	confine  bool
	backlog  int
	maxLine  int
	maxBody  int64
	docroot  string
	flagArgs []string // set flags in --name=value form
}

func main() {
	if code := run(os.Args[0], os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
}

func parseArgs(prog string, args []string) (*options, error) {
	o := &options{}
	fs := pflag.NewFlagSet(prog, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.StringVarP(&o.port, "port", "p", listen.DefaultPort, "port or service name to listen on")
	fs.BoolVarP(&o.chroot, "chroot", "c", false, "chroot to docroot and drop privileges")
	fs.StringVarP(&o.user, "user", "u", "", "user to run as with --chroot")
	fs.StringVarP(&o.group, "group", "g", "", "group to run as with --chroot")
	fs.BoolVarP(&o.debug, "debug", "d", false, "stay in the foreground and log to stderr")
	fs.BoolVar(&o.confine, "confine", false, "answer 404 for paths that leave docroot")
	fs.IntVar(&o.backlog, "backlog", listen.DefaultBacklog, "pending connection backlog")
	fs.IntVar(&o.maxLine, "max-line", httpd.DefaultMaxLineBytes, "longest request or header line in bytes")
	fs.Int64Var(&o.maxBody, "max-body", httpd.DefaultMaxBodyBytes, "largest request body in bytes")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, errors.New("exactly one docroot is required")
	}
	o.docroot = fs.Arg(0)
	fs.Visit(func(f *pflag.Flag) {
		o.flagArgs = append(o.flagArgs, "--"+f.Name+"="+f.Value.String())
	})
	return o, nil
}

func run(prog string, args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(prog, args)
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Fprintf(stdout, usage, prog)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		fmt.Fprintf(stderr, usage, prog)
		return 1
	}
	if opts.docroot, err = filepath.Abs(opts.docroot); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return 1
	}

	if !opts.debug {
		dctx := &daemon.Context{WorkDir: "/", Umask: 0o022, Args: daemonArgs(prog, opts)}
		child, err := dctx.Reborn()
		if err != nil {
			fmt.Fprintf(stderr, "%s: daemonize: %v\n", prog, err)
			return 1
		}
		if child != nil {
			return 0
		}
		defer dctx.Release()
	}

	logger, err := obs.NewLogger(opts.debug, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return 1
	}

	docroot := opts.docroot
	if opts.chroot {
		if err := privsep.Setup(docroot, opts.user, opts.group); err != nil {
			logger.Logf(obs.Error, "%v", err)
			return 1
		}
		docroot = ""
	}

	ln, err := listen.Port(opts.port, opts.backlog)
	if err != nil {
		logger.Logf(obs.Error, "failed to listen socket: %v", err)
		return 1
	}
	return serve(ln, docroot, opts, logger)
}

func serve(ln net.Listener, docroot string, opts *options, logger obs.Logger) int {
	meter := &obs.Counters{}
	srv := &httpd.Server{
		DocRoot:      docroot,
		Logger:       logger,
		Meter:        meter,
		MaxLineBytes: opts.maxLine,
		MaxBodyBytes: opts.maxBody,
		Confine:      opts.confine,
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM, os.Interrupt)
	defer signal.Stop(sigs)
	go func() {
		sig := <-sigs
		if s, isSys := sig.(syscall.Signal); isSys {
			logger.Logf(obs.Info, "exit by signal %d", int(s))
		}
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Logf(obs.Warn, "shutdown: %v", err)
		}
	}()

	logger.Logf(obs.Info, "%s/%s serving %q on %s", httpd.ServerName, httpd.ServerVersion, opts.docroot, ln.Addr())
	err := srv.Serve(ln)
	logger.Logf(obs.Info, "totals: %v", meter.Snapshot())
	if errors.Is(err, httpd.ErrServerClosed) {
		return 0
	}
	logger.Logf(obs.Error, "accept(2) failed: %v", err)
	return 1
}

// daemonArgs is the command line of the detached child. The docroot is
// already absolute because the child starts in "/".
func daemonArgs(prog string, opts *options) []string {
	args := append([]string{prog}, opts.flagArgs...)
	return append(args, "--", opts.docroot)
}
