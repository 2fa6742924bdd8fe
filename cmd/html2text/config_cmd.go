package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-html2text/internal/yamlutil"
)

// runConfigCmd prints the effective configuration as YAML.
func runConfigCmd(args []string, env *Environment) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	var name, envFile string
	fs.StringVarP(&name, "config", "c", "", "config file name or path")
	fs.StringVar(&envFile, "env-file", "", "read HTML2TEXT_* variables from a .env file")
	fs.Usage = func() { printConfigUsage(os.Stderr) }
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	dotenv, err := readEnvFile(envFile)
	if err != nil {
		return err
	}
	envCfg := loadEnvConfig(dotenv)
	warnUnknownEnvVars(env.Stderr, dotenv)

	cfg, err := loadConfig(name, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return err
}
