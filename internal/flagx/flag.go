// Package flagx holds small helpers for sharing os.Args between several
// independent flag sets (JSON config lookup, .env lookup, application flags).
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps only the flags listed in allowed, together with their
// values. Both "-f value" and "-f=value" forms are recognized. The result is
// never nil.
func FilterArgs(args []string, allowed []string) []string {
	known := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		known[f] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, keep := known[name]; keep {
				out = append(out, arg)
			}
			continue
		}

		if _, keep := known[arg]; !keep {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// lookupString parses args with a throwaway flag set that only knows the
// given aliases and returns the value of the last one set.
func lookupString(args []string, aliases ...string) string {
	flags := make([]string, 0, len(aliases)*2)
	for _, a := range aliases {
		flags = append(flags, "-"+a, "--"+a)
	}

	var v string
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, a := range aliases {
		fs.StringVar(&v, a, "", "")
	}
	_ = fs.Parse(FilterArgs(args, flags))
	return v
}

// ConfigPath returns the JSON config file path given via -c or -config,
// or "" when neither is present.
func ConfigPath(args []string) string {
	return lookupString(args, "c", "config")
}

// EnvFilePath returns the dotenv file path given via -e or -env-file,
// or "" when neither is present.
func EnvFilePath(args []string) string {
	return lookupString(args, "e", "env-file")
}
