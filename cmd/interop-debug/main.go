// Command interop-debug loads a bolt- or leveldb-backed ledger dump and
// invokes one named interop service against it, for manual inspection of
// what a given syscall would return without standing up a full VM.
package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/urfave/cli"

	"github.com/nspcc-dev/neo-interop/pkg/hash"
	"github.com/nspcc-dev/neo-interop/pkg/runtimesvc"
	"github.com/nspcc-dev/neo-interop/pkg/session"
	"github.com/nspcc-dev/neo-interop/pkg/snapshot"
	"github.com/nspcc-dev/neo-interop/pkg/snapshot/boltstore"
	"github.com/nspcc-dev/neo-interop/pkg/snapshot/leveldbstore"
	"github.com/nspcc-dev/neo-interop/pkg/state"
	syscallsvc "github.com/nspcc-dev/neo-interop/pkg/syscall"
)

func main() {
	app := cli.NewApp()
	app.Name = "interop-debug"
	app.Usage = "invoke one interop syscall against a ledger dump"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "store", Value: "bolt", Usage: "backing store: bolt or leveldb"},
		cli.StringFlag{Name: "path", Usage: "path to the store's file (bolt) or directory (leveldb)"},
		cli.IntFlag{Name: "cache-size", Value: 256, Usage: "contract LRU cache size (bolt only)"},
		cli.StringFlag{Name: "method", Usage: "dotted interop method name, e.g. System.Storage.Get"},
		cli.StringFlag{Name: "trigger", Value: "application", Usage: "application, applicationr, or verification"},
		cli.StringFlag{Name: "script-hash", Value: "", Usage: "hex-encoded 20-byte executing script hash"},
		cli.StringSliceFlag{Name: "arg", Usage: "hex-encoded byte-array argument, repeatable; pushed in order given"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	path := c.String("path")
	method := c.String("method")
	if path == "" {
		return cli.NewExitError("missing required -path", 1)
	}
	if method == "" {
		return cli.NewExitError("missing required -method", 1)
	}

	snap, closeFn, err := openStore(c.String("store"), path, c.Int("cache-size"))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeFn()

	trigger, err := parseTrigger(c.String("trigger"))
	if err != nil {
		return err
	}

	scriptHash, err := parseScriptHash(c.String("script-hash"))
	if err != nil {
		return fmt.Errorf("parse -script-hash: %w", err)
	}

	engine := &debugEngine{scriptHash: scriptHash}
	sess := session.NewSession(trigger, snap, engine, session.DefaultConfig(), runtimesvc.NewRealClock(clock.New()), nil, nil)
	syscallsvc.RegisterAll(sess.Registry())

	for _, hexArg := range c.StringSlice("arg") {
		item, err := parseArg(hexArg)
		if err != nil {
			return err
		}
		engine.Push(item)
	}

	if !sess.Invoke([]byte(method)) {
		return cli.NewExitError(fmt.Sprintf("%s failed", method), 2)
	}

	if len(engine.stack) == 0 {
		fmt.Println("ok, no result pushed")
		return nil
	}
	for i := len(engine.stack) - 1; i >= 0; i-- {
		fmt.Println(formatItem(engine.stack[i]))
	}
	return nil
}

func openStore(kind, path string, cacheSize int) (snapshot.Snapshot, func() error, error) {
	switch kind {
	case "bolt":
		s, err := boltstore.Open(path, cacheSize)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "leveldb":
		s, err := leveldbstore.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store kind %q", kind)
	}
}

func parseTrigger(name string) (state.TriggerType, error) {
	switch name {
	case "application":
		return state.TriggerApplication, nil
	case "applicationr":
		return state.TriggerApplicationR, nil
	case "verification":
		return state.TriggerVerification, nil
	default:
		return 0, fmt.Errorf("unknown trigger %q", name)
	}
}

func parseScriptHash(hexValue string) (hash.Uint160, error) {
	if hexValue == "" {
		return hash.Uint160{}, nil
	}
	raw, err := hex.DecodeString(hexValue)
	if err != nil {
		return hash.Uint160{}, err
	}
	return hash.Uint160DecodeBytesLE(raw)
}
