// Command ffmpeg-path prints the path to the ffmpeg executable. It takes no
// arguments and no flags: on success the path goes to stdout and the exit
// code is 0; if ffmpeg cannot be found through any discovery strategy, the
// remediation message goes to stderr and the exit code is 1.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/skillforge/skillet/pkg/ffmpeg"
)

func main() {
	path, err := ffmpeg.Resolve(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(path)
}
