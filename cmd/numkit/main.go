// Command numkit performs exact decimal arithmetic from the shell.
//
//	numkit add 0.1 0.2            # 0.3
//	numkit div 10 3 --digits 5    # 3.33333
//	numkit fixed 2.345 --mode truncate
//	numkit -o json mul 1.5 -- -2
//
// Negative operands must follow "--" so they are not read as flags.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
