// Command scicalc evaluates scientific-calculator expressions from its
// arguments or from stdin, one expression per line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	mathexpr "github.com/JuiceDogoUi/worldcalculator-sub002"
)

// config mirrors the optional TOML config file.
type config struct {
	// AngleMode is "degrees" or "radians".
	AngleMode string `toml:"angle_mode"`
	// MaxDepth overrides the parser nesting limit.
	MaxDepth int `toml:"max_depth"`
	// Echo prints parse trees before results.
	Echo bool `toml:"echo"`
}

func main() {
	var (
		cfgPath string
		radians bool
		check   bool
		echo    bool
		debug   bool
	)
	flag.StringVar(&cfgPath, "config", "", "TOML config file")
	flag.BoolVar(&radians, "rad", false, "interpret trig arguments in radians (default degrees)")
	flag.BoolVar(&check, "check", false, "validate expressions without evaluating")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&debug, "debug", false, "log engine diagnostics to stderr")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if debug {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.WarnLevel)
	}

	cfg := config{MaxDepth: mathexpr.DefaultMaxDepth}
	if cfgPath != "" {
		if _, err := toml.DecodeFile(cfgPath, &cfg); err != nil {
			log.Fatal().Err(err).Str("path", cfgPath).Msg("read config")
		}
	}
	mode := mathexpr.Degrees
	if cfg.AngleMode == "radians" || radians {
		mode = mathexpr.Radians
	}
	echo = echo || cfg.Echo
	opts := []mathexpr.ParseOption{mathexpr.MaxDepth(cfg.MaxDepth)}
	log.Debug().Stringer("mode", mode).Int("max_depth", cfg.MaxDepth).Msg("engine configured")

	code := 0
	run := func(src string) {
		if !one(src, mode, check, echo, opts, log) {
			code = 1
		}
	}
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			run(arg)
		}
	} else {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			if sc.Text() == "" {
				continue
			}
			run(sc.Text())
		}
		if err := sc.Err(); err != nil {
			log.Fatal().Err(err).Msg("read stdin")
		}
	}
	os.Exit(code)
}

// one handles a single expression and reports whether it succeeded.
func one(src string, mode mathexpr.AngleMode, check, echo bool, opts []mathexpr.ParseOption, log zerolog.Logger) bool {
	if check {
		v := mathexpr.Validate(src, opts...)
		for _, w := range v.Warnings {
			log.Warn().Str("expr", src).Msg(w)
		}
		if v.Valid {
			fmt.Println("ok")
			return true
		}
		for _, e := range v.Errors {
			fmt.Println(e.Message)
		}
		return false
	}

	start := time.Now()
	e, err := mathexpr.Parse(src, opts...)
	if err != nil {
		fmt.Println(err)
		return false
	}
	if echo {
		fmt.Printf("%v : ", e)
	}
	r, err := e.Eval(mathexpr.NewContext(mode))
	if err != nil {
		fmt.Println(err)
		return false
	}
	log.Debug().Str("expr", src).Float64("value", r).Dur("took", time.Since(start)).Msg("evaluated")
	fmt.Println(mathexpr.Format(r))
	return true
}
