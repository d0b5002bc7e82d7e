package cli

import "github.com/spf13/pflag"

// normalizeFlagSpelling accepts American spellings for flags named with
// British spellings, so --colors works wherever --colours does.
func normalizeFlagSpelling(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "colors" {
		name = "colours"
	}
	return pflag.NormalizedName(name)
}
