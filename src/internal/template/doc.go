// Package template turns file path patterns into rsyslog list templates.
//
// A pattern such as "/var/log/remote/hst/pme.log" is split on the delimiters
// "/", ".", "_" and "-". Each remaining piece is looked up by code in a
// property catalog: known codes become property references, everything else
// (including the delimiters themselves) becomes a literal constant.
//
//	cat := catalog.Default()
//	fmt.Println(template.Generate("per_host", "/var/log/remote/hst/pme.log", cat))
//
// prints
//
//	template(name="per_host" type="list") {
//	    constant(value="/")
//	    constant(value="var")
//	    ...
//	    property(name="hostname")
//	    constant(value="/")
//	    property(name="programname")
//	    constant(value=".")
//	    constant(value="log")
//	}
//
// Output is deterministic for identical inputs. Values are written without
// escaping.
package template
