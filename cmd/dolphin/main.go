// dolphin is a console host for the Dolphin-Bot chess engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/prodk123/Dolphin-Bot/pkg/game"
	"github.com/prodk123/Dolphin-Bot/pkg/game/console"
	"github.com/seekerror/logw"
)

var (
	seed = flag.Int64("seed", time.Now().UnixNano(), "Random seed for engine move selection")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: dolphin [options]

Dolphin-Bot plays legal chess against a human on a line-based console. The
human plays white; the engine replies as black. Moves are entered in
coordinate form, such as "e2e4".
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	logw.Infof(ctx, "Dolphin-Bot chess engine %v", game.Version())

	reg := game.NewRegistry(ctx, game.WithSeed(*seed))

	in := console.ReadStdinLines(ctx)
	driver, out := console.NewDriver(ctx, reg, in)
	go console.WriteStdoutLines(ctx, out)

	<-driver.Closed()
}
