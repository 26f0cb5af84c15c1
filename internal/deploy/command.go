package deploy

import (
	"strings"
)

// Binary is the executable every deployment runs.
const Binary = "gcloud"

// envDelimiters are tried in order when a value contains a comma; see
// `gcloud topic escaping`.
var envDelimiters = []string{"@", "|", ";", "#", "~"}

// BuildArgs returns the gcloud arguments deploying cfg from source.
// Unauthenticated access is granted when allowUnauthenticated is set or the
// config asks for it.
func BuildArgs(cfg *Config, source string, allowUnauthenticated bool) []string {
	cr := cfg.CloudRun
	args := []string{
		"run", "deploy", string(cr.ServiceName),
		"--source=" + source,
		"--project=" + string(cr.TargetProject),
		"--region=" + string(cr.Region),
		"--platform=managed",
		"--memory=" + string(cr.Memory),
		"--cpu=" + string(cr.CPU),
		"--concurrency=" + string(cr.Concurrency),
		"--timeout=" + string(cr.Timeout),
		"--min-instances=" + string(cr.MinInstances),
		"--max-instances=" + string(cr.MaxInstances),
	}
	if allowUnauthenticated || cr.AllowUnauthenticated {
		args = append(args, "--allow-unauthenticated")
	}
	if cr.ServiceAccount != "" {
		args = append(args, "--service-account="+string(cr.ServiceAccount))
	}
	if cr.VPCConnector != "" {
		args = append(args, "--vpc-connector="+string(cr.VPCConnector))
	}
	if env := cfg.SortedEnv(); len(env) > 0 {
		args = append(args, "--set-env-vars="+joinEnv(env))
	}
	return args
}

// joinEnv joins pairs with commas, switching to gcloud's ^DELIM^ syntax when
// a value itself contains a comma.
func joinEnv(pairs []string) string {
	joined := strings.Join(pairs, ",")
	if strings.Count(joined, ",") == len(pairs)-1 {
		return joined
	}
	for _, d := range envDelimiters {
		if !strings.Contains(joined, d) {
			return "^" + d + "^" + strings.Join(pairs, d)
		}
	}
	return joined
}

// FormatCommand renders args as a multi-line shell command for display.
func FormatCommand(args []string) string {
	if len(args) < 3 {
		return Binary + " " + strings.Join(args, " ")
	}
	var b strings.Builder
	b.WriteString(Binary + " " + strings.Join(args[:3], " "))
	for _, a := range args[3:] {
		b.WriteString(" \\\n    ")
		b.WriteString(a)
	}
	return b.String()
}
