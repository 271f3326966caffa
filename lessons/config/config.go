package config

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/golessons/curriculum"
)

// Flags are the command-line options of an imaginary server.
type Flags struct {
	Addr    string
	Verbose bool
	Timeout time.Duration
}

// ParseFlags parses args (not os.Args, so tests and lessons stay in
// control) into Flags. Unknown flags return an error instead of killing
// the process, because the FlagSet uses ContinueOnError.
func ParseFlags(args []string) (Flags, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var f Flags
	fs.StringVar(&f.Addr, "addr", ":8080", "listen address")
	fs.BoolVar(&f.Verbose, "verbose", false, "chatty logging")
	fs.DurationVar(&f.Timeout, "timeout", 5*time.Second, "request timeout")

	if err := fs.Parse(args); err != nil {
		return Flags{}, fmt.Errorf("config: parse flags: %w", err)
	}
	return f, nil
}

// EnvOr returns the value of key, or fallback when the variable is
// unset. An empty value counts as set.
func EnvOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// ServerConfig is a cleanenv-tagged struct: the YAML keys, the env
// overrides and the defaults all live on the fields they configure.
type ServerConfig struct {
	Env  string `yaml:"env" env:"APP_ENV" env-default:"dev"`
	HTTP struct {
		Addr    string        `yaml:"address" env:"APP_ADDR" env-default:"localhost:8080"`
		Timeout time.Duration `yaml:"timeout" env:"APP_TIMEOUT" env-default:"5s"`
	} `yaml:"http"`
}

// LoadServerConfig reads the YAML file at path and then lets matching
// environment variables override it.
func LoadServerConfig(path string) (ServerConfig, error) {
	var cfg ServerConfig
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("config: read %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// ServiceSpec is one service block of an HCL deployment file.
type ServiceSpec struct {
	Name     string   `hcl:"name,label"`
	Port     int      `hcl:"port"`
	Replicas int      `hcl:"replicas,optional"`
	Tags     []string `hcl:"tags,optional"`
}

// Deployment is the root HCL document.
type Deployment struct {
	Timeout  string        `hcl:"timeout,optional"`
	Services []ServiceSpec `hcl:"service,block"`
}

// ParseDeployment decodes HCL source. vars become variables that the
// file's expressions can reference.
func ParseDeployment(src string, vars map[string]cty.Value) (Deployment, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL([]byte(src), "deploy.hcl")
	if diags.HasErrors() {
		return Deployment{}, fmt.Errorf("config: parse hcl: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{Variables: vars}
	var d Deployment
	if diags := gohcl.DecodeBody(file.Body, evalCtx, &d); diags.HasErrors() {
		return Deployment{}, fmt.Errorf("config: decode hcl: %s", diags.Error())
	}
	return d, nil
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   31,
		Slug:     "config",
		Title:    "Configuration",
		Part:     curriculum.PartEngineering,
		Synopsis: "flags, env vars, .env files, cleanenv structs, HCL with cty",
		Topics:   []string{"flag", "os.LookupEnv", "godotenv", "cleanenv", "HCL"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Configuration")

	nb.Step("Flags: explicit, typed, self-documenting")
	f, err := ParseFlags([]string{"-addr", ":7070", "-verbose", "-timeout", "250ms"})
	if err != nil {
		return err
	}
	nb.Sayf("parsed -> addr=%s verbose=%v timeout=%v", f.Addr, f.Verbose, f.Timeout)
	_, err = ParseFlags([]string{"-no-such-flag"})
	nb.Sayf("unknown flag -> %v", err)
	nb.Say("A FlagSet with ContinueOnError turns bad input into an error")
	nb.Say("value; the default ExitOnError would have killed the process.")

	nb.Step("Environment variables")
	nb.Sayf("EnvOr(\"GOLESSONS_MISSING\", \"fallback\") -> %q", EnvOr("GOLESSONS_MISSING", "fallback"))
	nb.Say("LookupEnv's second result tells unset apart from set-but-empty,")
	nb.Say("a distinction Getenv flattens away.")

	nb.Step(".env files with godotenv")
	pairs, err := godotenv.Unmarshal("DB_HOST=localhost\nDB_PORT=5432\n# comments are fine\nDB_NAME=lessons")
	if err != nil {
		return err
	}
	nb.Sayf("DB_HOST=%s DB_PORT=%s DB_NAME=%s", pairs["DB_HOST"], pairs["DB_PORT"], pairs["DB_NAME"])
	nb.Say("godotenv.Load does the same against a .env file and exports")
	nb.Say("the pairs into the process, giving dev shells the same shape")
	nb.Say("of environment the deployment will have.")

	nb.Step("cleanenv: one struct, three sources")
	dir, err := os.MkdirTemp("", "golessons-config-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)
	yamlPath := filepath.Join(dir, "app.yaml")
	yamlBody := "http:\n  address: \"0.0.0.0:9090\"\n  timeout: 2s\n"
	if err := os.WriteFile(yamlPath, []byte(yamlBody), 0o600); err != nil {
		return err
	}
	cfg, err := LoadServerConfig(yamlPath)
	if err != nil {
		return err
	}
	nb.Sayf("file only   -> env=%s addr=%s timeout=%v", cfg.Env, cfg.HTTP.Addr, cfg.HTTP.Timeout)
	if err := os.Setenv("APP_ENV", "prod"); err != nil {
		return err
	}
	defer os.Unsetenv("APP_ENV")
	cfg, err = LoadServerConfig(yamlPath)
	if err != nil {
		return err
	}
	nb.Sayf("env on top  -> env=%s addr=%s timeout=%v", cfg.Env, cfg.HTTP.Addr, cfg.HTTP.Timeout)
	nb.Say("The file never mentioned env, so its env-default filled in")
	nb.Say("\"dev\"; the APP_ENV variable then overrode it. Tags on the")
	nb.Say("struct are the whole wiring.")

	nb.Step("HCL: configuration that can compute")
	src := `
timeout = "45s"

service "billing" {
  port     = base_port + 2
  replicas = 3
  tags     = ["pci", "internal"]
}

service "web" {
  port = base_port
}
`
	dep, err := ParseDeployment(src, map[string]cty.Value{
		"base_port": cty.NumberIntVal(8080),
	})
	if err != nil {
		return err
	}
	nb.Sayf("timeout -> %s", dep.Timeout)
	for _, svc := range dep.Services {
		nb.Sayf("service %-8s port=%d replicas=%d tags=%v", svc.Name, svc.Port, svc.Replicas, svc.Tags)
	}
	nb.Say("Blocks decode into slices of structs via hcl tags; base_port")
	nb.Say("came from the EvalContext, and port = base_port + 2 was")
	nb.Say("evaluated, not string-substituted.")
	_, err = ParseDeployment(`service {}`, nil)
	nb.Show("malformed HCL rejected", err != nil)

	nb.Step("cty: the type system under HCL")
	var port int
	if err := gocty.FromCtyValue(cty.NumberIntVal(8080), &port); err != nil {
		return err
	}
	nb.Sayf("gocty.FromCtyValue -> %d (a real Go int)", port)
	nb.Sayf("cty.List(cty.String) -> %s", cty.List(cty.String).FriendlyName())
	nb.Say("Every HCL expression evaluates to a cty.Value with a checked")
	nb.Say("type; gocty converts between that world and Go values.")

	nb.Step("The precedence ladder")
	nb.Say("defaults < config file < environment < flags")
	nb.Say("Each layer is for a different audience: authors set defaults,")
	nb.Say("operators own files and env, a human at a terminal wins with")
	nb.Say("flags. Document the order and never surprise anyone.")

	nb.Takeaways(
		"parse flags from an explicit args slice; only main touches os.Args",
		"LookupEnv distinguishes unset from empty",
		"cleanenv folds file + env + defaults into one tagged struct",
		"HCL buys expressions and structure at the cost of a parser",
	)
	return nb.Err()
}
