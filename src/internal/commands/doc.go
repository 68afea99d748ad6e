// Package commands implements CLI command handlers for logsrv-assist.
//
// Each subcommand implements the Runner interface:
//   - Init(): parse flags, load the catalog or profile it needs and validate input
//   - Run(): render configuration text to the context's stdout
//   - Name(): return the command name for routing
//
// # Available Commands
//
//   - listener, ruleset, tls-listener, template: render a single block from flags
//   - properties: describe the property catalog as json, yaml or toml
//   - generate: render a whole profile
//   - example-config: print a sample profile
//   - wizard: ask for a block's settings interactively
//
// Configuration text is written to stdout; logs and SELinux/firewall advice go
// to stderr so the output can be redirected straight into a config file.
//
//	cmd := commands.CreateGenerateCommand()
//	ctx := &commands.AppContext{ConfigPath: "/etc/logsrv-assist/profile.toml"}
//	if err := cmd.Init(args, ctx); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package commands
