package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/maksimkurb/logsrv-assist/src/internal/catalog"
	"github.com/maksimkurb/logsrv-assist/src/internal/config"
	"github.com/maksimkurb/logsrv-assist/src/internal/errors"
	"github.com/maksimkurb/logsrv-assist/src/internal/log"
	"github.com/maksimkurb/logsrv-assist/src/internal/rsyslog"
)

var errWizardAborted = errors.New(errors.ErrCodeInvalidArgument, "wizard aborted")

var wizardKinds = []string{"listener", "ruleset", "tls-listener", "template"}

// prompter reads one answer per call.
type prompter interface {
	Prompt(label string) (string, error)
	Close() error
}

type readlinePrompter struct {
	rl *readline.Instance
}

// newReadlinePrompter prompts on stderr so stdout carries only configuration text.
func newReadlinePrompter(ctx *AppContext) (prompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           ctx.stdin(),
		Stdout:          os.Stderr,
		Stderr:          os.Stderr,
	})
	if err != nil {
		return nil, errors.NewInternalError("failed to initialize prompt", err)
	}
	return &readlinePrompter{rl: rl}, nil
}

func (p *readlinePrompter) Prompt(label string) (string, error) {
	p.rl.SetPrompt(label)
	return p.rl.Readline()
}

func (p *readlinePrompter) Close() error {
	return p.rl.Close()
}

func CreateWizardCommand() *WizardCommand {
	return &WizardCommand{
		fs:          flag.NewFlagSet("wizard", flag.ExitOnError),
		newPrompter: newReadlinePrompter,
	}
}

type WizardCommand struct {
	fs          *flag.FlagSet
	ctx         *AppContext
	catalog     *catalog.Catalog
	newPrompter func(ctx *AppContext) (prompter, error)
}

func (g *WizardCommand) Name() string {
	return g.fs.Name()
}

func (g *WizardCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	cat, err := loadCatalog(ctx.CatalogPath)
	if err != nil {
		return err
	}
	g.catalog = cat

	return nil
}

func (g *WizardCommand) Run() error {
	p, err := g.newPrompter(g.ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := p.Close(); err != nil {
			log.Warnf("Failed to close prompt: %v", err)
		}
	}()

	err = g.runWizard(&wizard{p: p})
	if err == errWizardAborted {
		log.Warnf("Wizard aborted, nothing generated")
		return nil
	}
	return err
}

func (g *WizardCommand) runWizard(w *wizard) error {
	kind, err := w.ask("What to generate ("+strings.Join(wizardKinds, ", ")+")", wizardKinds[0], checkOneOf(wizardKinds))
	if err != nil {
		return err
	}

	out := g.ctx.stdout()

	switch kind {
	case "listener":
		l := &config.ListenerConfig{}
		if l.Port, err = w.askPort(rsyslog.DefaultPort); err != nil {
			return err
		}
		if l.Protocol, err = w.askProtocol(); err != nil {
			return err
		}
		return writeListener(out, l)

	case "ruleset":
		r := &config.RulesetConfig{}
		if r.Name, err = w.ask("Ruleset name", "", checkRequired); err != nil {
			return err
		}
		if r.Template, err = w.ask("Template name", "", checkRequired); err != nil {
			return err
		}
		if r.Port, err = w.askPort(rsyslog.DefaultPort); err != nil {
			return err
		}
		if r.Protocol, err = w.askProtocol(); err != nil {
			return err
		}
		if r.Filters, err = w.ask("Filters", "*.*", checkFilters); err != nil {
			return err
		}
		return writeRuleset(out, r)

	case "tls-listener":
		l := &config.TLSListenerConfig{}
		if l.Port, err = w.askPort(defaultTLSPort); err != nil {
			return err
		}
		if l.CAFile, err = w.ask("CA certificate file", "", checkRequired); err != nil {
			return err
		}
		if l.CertFile, err = w.ask("Server certificate file", "", checkRequired); err != nil {
			return err
		}
		if l.KeyFile, err = w.ask("Server private key file", "", checkRequired); err != nil {
			return err
		}
		if l.Filters, err = w.ask("Filters", "*.*", checkFilters); err != nil {
			return err
		}
		if l.Ruleset, err = w.ask("Ruleset name", "", checkRequired); err != nil {
			return err
		}
		if l.Template, err = w.ask("Template name", "", checkRequired); err != nil {
			return err
		}
		return writeTLSListener(out, l)

	default:
		t := &config.TemplateConfig{}
		if t.Name, err = w.ask("Template name", "", checkRequired); err != nil {
			return err
		}
		if t.Path, err = w.ask("File path pattern", "", checkRequired); err != nil {
			return err
		}
		return writeTemplate(out, t, g.catalog)
	}
}

type wizard struct {
	p prompter
}

// ask prompts until check accepts the answer. An empty answer means def.
func (w *wizard) ask(label, def string, check func(string) error) (string, error) {
	prompt := label + ": "
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, def)
	}

	for {
		answer, err := w.p.Prompt(prompt)
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				return "", errWizardAborted
			}
			return "", err
		}

		answer = strings.TrimSpace(answer)
		if answer == "" {
			answer = def
		}

		if err := check(answer); err != nil {
			log.Errorf("%v", err)
			continue
		}
		return answer, nil
	}
}

func (w *wizard) askPort(def int) (int, error) {
	answer, err := w.ask("Port", strconv.Itoa(def), checkPort)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(answer)
}

func (w *wizard) askProtocol() (string, error) {
	return w.ask("Protocol (tcp, udp)", string(rsyslog.TCP), func(answer string) error {
		_, err := rsyslog.ParseProtocol(answer)
		return err
	})
}

func checkRequired(answer string) error {
	if answer == "" {
		return errors.NewInvalidArgumentError("a value is required")
	}
	return nil
}

func checkPort(answer string) error {
	port, err := strconv.Atoi(answer)
	if err != nil || port < 1 || port > 65535 {
		return errors.NewInvalidArgumentError(fmt.Sprintf("port must be a number between 1 and 65535, got %q", answer))
	}
	return nil
}

func checkFilters(answer string) error {
	if rsyslog.JoinFilters(answer) == "" {
		return errors.NewInvalidArgumentError("at least one facility.severity selector is required")
	}
	return nil
}

func checkOneOf(allowed []string) func(string) error {
	return func(answer string) error {
		for _, a := range allowed {
			if a == answer {
				return nil
			}
		}
		return errors.NewInvalidArgumentError(fmt.Sprintf("expected one of %s, got %q", strings.Join(allowed, ", "), answer))
	}
}
