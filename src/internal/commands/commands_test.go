package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maksimkurb/logsrv-assist/src/internal/config"
	"github.com/maksimkurb/logsrv-assist/src/internal/errors"
	"github.com/maksimkurb/logsrv-assist/src/internal/log"
)

func TestMain(m *testing.M) {
	log.DisableLogs()
	os.Exit(m.Run())
}

func runCommand(t *testing.T, cmd Runner, ctx *AppContext, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	ctx.Stdout = &out

	if err := cmd.Init(args, ctx); err != nil {
		return "", err
	}
	err := cmd.Run()
	return out.String(), err
}

func TestCommandNames(t *testing.T) {
	names := []string{}
	for _, cmd := range []Runner{
		CreateListenerCommand(),
		CreateTLSListenerCommand(),
		CreateRulesetCommand(),
		CreateTemplateCommand(),
		CreatePropertiesCommand(),
		CreateGenerateCommand(),
		CreateExampleConfigCommand(),
		CreateWizardCommand(),
	} {
		names = append(names, cmd.Name())
	}

	assert.Equal(t, []string{"listener", "tls-listener", "ruleset", "template", "properties", "generate", "example-config", "wizard"}, names)
}

func TestListenerCommand(t *testing.T) {
	out, err := runCommand(t, CreateListenerCommand(), &AppContext{}, "-port", "1514", "-protocol", "udp")
	require.NoError(t, err)

	assert.Equal(t, `# rsyslog server configuration

# Load the necessary modules
module(load="imudp")
input(type="imudp" port="1514")
# End of configuration
`, out)
}

func TestListenerCommand_InvalidInput(t *testing.T) {
	_, err := runCommand(t, CreateListenerCommand(), &AppContext{}, "-port", "9999", "-protocol", "xyz")
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.NotErrorIs(t, err, errors.ErrValidation)

	_, err = runCommand(t, CreateListenerCommand(), &AppContext{}, "-port", "0")
	assert.ErrorIs(t, err, errors.ErrValidation)
}

func TestRulesetCommand(t *testing.T) {
	out, err := runCommand(t, CreateRulesetCommand(), &AppContext{},
		"-name", "remote", "-template", "per_host", "-port", "10514", "-filters", "mail.crit, local3.*")
	require.NoError(t, err)

	assert.Equal(t, `module(load="imtcp")

ruleset(name="remote"){
    mail.crit;local3.* action(type="omfile" DynaFile="per_host")
}

input(type="imtcp" port="10514" ruleset="remote")
`, out)
}

func TestRulesetCommand_InvalidProtocol(t *testing.T) {
	_, err := runCommand(t, CreateRulesetCommand(), &AppContext{}, "-name", "r", "-template", "t", "-protocol", "imudp")
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
}

func TestRulesetCommand_MissingName(t *testing.T) {
	_, err := runCommand(t, CreateRulesetCommand(), &AppContext{}, "-template", "t")

	var ve config.ValidationErrors
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "name", ve[0].FieldPath)
}

func TestTLSListenerCommand(t *testing.T) {
	out, err := runCommand(t, CreateTLSListenerCommand(), &AppContext{},
		"-ca", "/etc/CA.pem", "-cert", "/etc/tls.pem", "-key", "/etc/tls.key",
		"-ruleset", "tls_in", "-template", "per_host")
	require.NoError(t, err)

	assert.Contains(t, out, `DefaultNetstreamDriverCAFile="/etc/CA.pem"`)
	assert.Contains(t, out, `port="6514"`)
	assert.Contains(t, out, `ruleset(name="tls_in") {`)
	assert.Contains(t, out, `*.* action(type="omfile" DynaFile="per_host")`)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestTLSListenerCommand_MissingFiles(t *testing.T) {
	_, err := runCommand(t, CreateTLSListenerCommand(), &AppContext{}, "-ruleset", "r", "-template", "t")

	var ve config.ValidationErrors
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve, 3)
}

func TestTemplateCommand(t *testing.T) {
	out, err := runCommand(t, CreateTemplateCommand(), &AppContext{}, "-name", "per_host", "-path", "/var/log/hst.log")
	require.NoError(t, err)

	assert.Equal(t, `template(name="per_host" type="list") {
    constant(value="/")
    constant(value="var")
    constant(value="/")
    constant(value="log")
    constant(value="/")
    property(name="hostname")
    constant(value=".")
    constant(value="log")
}
`, out)
}

func TestTemplateCommand_CustomCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- code: node\n  name: hostname\n"), 0644))

	out, err := runCommand(t, CreateTemplateCommand(), &AppContext{CatalogPath: path}, "-name", "t", "-path", "node/hst")
	require.NoError(t, err)

	assert.Contains(t, out, `property(name="hostname")`)
	assert.Contains(t, out, `constant(value="hst")`)
}

func TestPropertiesCommand(t *testing.T) {
	out, err := runCommand(t, CreatePropertiesCommand(), &AppContext{}, "-format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "- code: msg")
	assert.NotContains(t, out, "name:")

	_, err = runCommand(t, CreatePropertiesCommand(), &AppContext{}, "-format", "xml")
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)

	_, err = runCommand(t, CreatePropertiesCommand(), &AppContext{CatalogPath: "/non/existent.json"})
	assert.ErrorIs(t, err, errors.ErrCatalog)
}

func TestExampleConfigCommand(t *testing.T) {
	out, err := runCommand(t, CreateExampleConfigCommand(), &AppContext{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "profile.toml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0644))

	cfg, err := loadAndValidateConfigOrFail(path)
	require.NoError(t, err)
	assert.Equal(t, config.ExampleConfig().Templates, cfg.Templates)
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "profile.toml")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.json"), []byte(`[{"code":"node","name":"hostname","description":""}]`), 0644))
	require.NoError(t, os.WriteFile(profile, []byte(`[general]
catalog = "catalog.json"

[[template]]
name = "per_node"
path = "/var/log/node.log"

[[listener]]
port = 514
protocol = "tcp"
`), 0644))

	out, err := runCommand(t, CreateGenerateCommand(), &AppContext{ConfigPath: profile})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# rsyslog configuration generated by logsrv-assist\n\n"))
	assert.Contains(t, out, `template(name="per_node" type="list") {`)
	assert.Contains(t, out, `property(name="hostname")`)
	assert.Contains(t, out, `input(type="imtcp" port="514")`)

	// an explicit -catalog overrides the profile's catalog
	out, err = runCommand(t, CreateGenerateCommand(), &AppContext{ConfigPath: profile, CatalogPath: filepath.Join(dir, "missing.json")})
	assert.ErrorIs(t, err, errors.ErrCatalog)
	assert.Empty(t, out)
}

func TestGenerateCommand_OutputFile(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "profile.toml")
	output := filepath.Join(dir, "50-remote.conf")

	buf, err := config.ExampleConfig().SerializeConfig()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(profile, buf.Bytes(), 0644))

	out, err := runCommand(t, CreateGenerateCommand(), &AppContext{ConfigPath: profile}, "-output", output)
	require.NoError(t, err)
	assert.Empty(t, out)

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(written), `ruleset(name="remote_tls") {`)

	// an identical file is left untouched
	require.NoError(t, os.Chmod(output, 0444))
	_, err = runCommand(t, CreateGenerateCommand(), &AppContext{ConfigPath: profile}, "-output", output)
	assert.NoError(t, err)

	// a stale file is rewritten
	require.NoError(t, os.Chmod(output, 0644))
	require.NoError(t, os.WriteFile(output, []byte("stale\n"), 0644))
	_, err = runCommand(t, CreateGenerateCommand(), &AppContext{ConfigPath: profile}, "-output", output)
	require.NoError(t, err)
	rewritten, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, written, rewritten)
}

func TestGenerateCommand_InvalidProtocol(t *testing.T) {
	profile := filepath.Join(t.TempDir(), "profile.toml")
	require.NoError(t, os.WriteFile(profile, []byte("[[listener]]\nport = 9999\nprotocol = \"xyz\"\n"), 0644))

	_, err := runCommand(t, CreateGenerateCommand(), &AppContext{ConfigPath: profile})
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "listener[0]")
}

type failingDocument struct{}

func (failingDocument) WriteTo(w io.Writer) (int64, error) {
	n, _ := io.WriteString(w, "partial")
	return int64(n), io.ErrShortWrite
}

func TestReplaceFile_FailedWriteKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "50-remote.conf")
	require.NoError(t, os.WriteFile(output, []byte("previous\n"), 0644))

	err := replaceFile(output, failingDocument{})
	assert.ErrorIs(t, err, errors.ErrInternal)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "previous\n", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReplaceFile_KeepsModeAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "50-remote.conf")
	require.NoError(t, os.WriteFile(output, []byte("stale\n"), 0600))

	require.NoError(t, replaceFile(output, strings.NewReader("fresh\n")))

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", string(content))

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReplaceFile_NewFileAndMissingDir(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "new.conf")

	require.NoError(t, replaceFile(output, strings.NewReader("x\n")))
	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	err = replaceFile(filepath.Join(dir, "missing", "out.conf"), strings.NewReader("x\n"))
	assert.ErrorIs(t, err, errors.ErrInternal)
}

func TestGenerateCommand_InvalidProfile(t *testing.T) {
	profile := filepath.Join(t.TempDir(), "profile.toml")
	require.NoError(t, os.WriteFile(profile, []byte("[[ruleset]]\nname = \"r\"\ntemplate = \"missing\"\nport = 514\nprotocol = \"tcp\"\nfilters = \"*.*\"\n"), 0644))

	_, err := runCommand(t, CreateGenerateCommand(), &AppContext{ConfigPath: profile})
	assert.ErrorIs(t, err, errors.ErrValidation)
	assert.Contains(t, err.Error(), "unknown template: missing")

	_, err = runCommand(t, CreateGenerateCommand(), &AppContext{ConfigPath: filepath.Join(t.TempDir(), "none.toml")})
	assert.ErrorIs(t, err, errors.ErrConfig)
}

// scriptedPrompter answers prompts from a fixed list and reports EOF afterwards.
type scriptedPrompter struct {
	answers []string
	labels  []string
	closed  bool
}

func (p *scriptedPrompter) Prompt(label string) (string, error) {
	p.labels = append(p.labels, label)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptedPrompter) Close() error {
	p.closed = true
	return nil
}

func runWizard(t *testing.T, answers ...string) (string, *scriptedPrompter, error) {
	t.Helper()
	p := &scriptedPrompter{answers: answers}
	cmd := CreateWizardCommand()
	cmd.newPrompter = func(*AppContext) (prompter, error) { return p, nil }

	out, err := runCommand(t, cmd, &AppContext{})
	return out, p, err
}

func TestWizard_Listener(t *testing.T) {
	out, p, err := runWizard(t, "", "1514", "udp")
	require.NoError(t, err)

	assert.Contains(t, out, `input(type="imudp" port="1514")`)
	assert.Equal(t, []string{
		"What to generate (listener, ruleset, tls-listener, template) [listener]: ",
		"Port [514]: ",
		"Protocol (tcp, udp) [tcp]: ",
	}, p.labels)
	assert.True(t, p.closed)
}

func TestWizard_InvalidProtocolReprompts(t *testing.T) {
	out, p, err := runWizard(t, "listener", "", "xyz", "TCP", "tcp")
	require.NoError(t, err)

	assert.Contains(t, out, `input(type="imtcp" port="514")`)
	assert.Len(t, p.labels, 5)
	assert.Equal(t, p.labels[2], p.labels[3])
	assert.Equal(t, p.labels[3], p.labels[4])
}

func TestWizard_InvalidPortReprompts(t *testing.T) {
	out, p, err := runWizard(t, "listener", "abc", "70000", "10514", "")
	require.NoError(t, err)

	assert.Contains(t, out, `input(type="imtcp" port="10514")`)
	assert.Len(t, p.labels, 5)
}

func TestWizard_Ruleset(t *testing.T) {
	out, _, err := runWizard(t, "ruleset", "remote", "per_host", "", "udp", "local3.info,local4.*")
	require.NoError(t, err)

	assert.Contains(t, out, `ruleset(name="remote"){`)
	assert.Contains(t, out, `local3.info;local4.* action(type="omfile" DynaFile="per_host")`)
	assert.Contains(t, out, `input(type="imudp" port="514" ruleset="remote")`)
}

func TestWizard_TLSListener(t *testing.T) {
	out, _, err := runWizard(t, "tls-listener", "", "/ca.pem", "/cert.pem", "/key.pem", ",", "", "tls", "daily")
	require.NoError(t, err)

	assert.Contains(t, out, `port="6514"`)
	assert.Contains(t, out, `DefaultNetstreamDriverKeyFile="/key.pem"`)
	assert.Contains(t, out, `*.* action(type="omfile" DynaFile="daily")`)
}

func TestWizard_Template(t *testing.T) {
	out, p, err := runWizard(t, "sink", "template", "", "per_host", "/var/log/hst.log")
	require.NoError(t, err)

	assert.Contains(t, out, `template(name="per_host" type="list") {`)
	assert.Contains(t, out, `property(name="hostname")`)
	assert.Len(t, p.labels, 5)
}

func TestWizard_Aborted(t *testing.T) {
	out, p, err := runWizard(t, "ruleset", "remote")
	require.NoError(t, err)

	assert.Empty(t, out)
	assert.True(t, p.closed)
}
