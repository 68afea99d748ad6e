package rsyslog

import (
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"
)

// Template variables available to the snippet templates below.
const (
	TMPL_MODULE    = "module"
	TMPL_PORT      = "port"
	TMPL_RULESET   = "ruleset"
	TMPL_TEMPLATE  = "template"
	TMPL_FILTERS   = "filters"
	TMPL_CA_FILE   = "ca_file"
	TMPL_CERT_FILE = "cert_file"
	TMPL_KEY_FILE  = "key_file"
)

const listenerTemplate = `# rsyslog server configuration

# Load the necessary modules
module(load="{{module}}")
input(type="{{module}}" port="{{port}}")
# End of configuration`

const rulesetTemplate = `module(load="{{module}}")

ruleset(name="{{ruleset}}"){
    {{filters}} action(type="omfile" DynaFile="{{template}}")
}

input(type="{{module}}" port="{{port}}" ruleset="{{ruleset}}")
`

const tlsListenerTemplate = `global(
    DefaultNetstreamDriver="gtls"
    DefaultNetstreamDriverCAFile="{{ca_file}}"
    DefaultNetstreamDriverCertFile="{{cert_file}}"
    DefaultNetstreamDriverKeyFile="{{key_file}}"
)

# load TCP listener
module(
    load="imtcp"
    StreamDriver.Name="gtls"
    StreamDriver.Mode="1"
    StreamDriver.Authmode="anon"
)

# start up listener at port {{port}}
input(
    type="imtcp"
    port="{{port}}"
)

ruleset(name="{{ruleset}}") {
    {{filters}} action(type="omfile" DynaFile="{{template}}")
}
`

// execute substitutes {{tag}} placeholders. Values are inserted verbatim.
func execute(tmpl string, values map[string]interface{}) string {
	return fasttemplate.ExecuteString(tmpl, "{{", "}}", values)
}

func formatPort(port int) string {
	return strconv.Itoa(port)
}

// JoinFilters normalizes a comma-separated facility/severity list into an
// rsyslog selector: entries are trimmed, empty ones dropped, the rest joined with ";".
func JoinFilters(list string) string {
	var selectors []string
	for _, entry := range strings.Split(list, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			selectors = append(selectors, entry)
		}
	}
	return strings.Join(selectors, ";")
}
