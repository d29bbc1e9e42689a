package main

import (
	"fmt"
	"os"

	"github.com/skillforge/skillet/pkg/ffmpeg"
	"github.com/spf13/cobra"
)

var ffmpegPathCmd = &cobra.Command{
	Use:   "ffmpeg-path",
	Short: "Print the path to the ffmpeg executable",
	Long: `Resolve the ffmpeg executable and print its path.

Resolution tries the imageio-ffmpeg bundled binary first (pip install
imageio-ffmpeg), then falls back to ffmpeg on the system PATH. If neither
is available the remediation message is printed to stderr and the command
exits non-zero.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		path, err := ffmpeg.Resolve(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(path)
	},
}

func init() {
	rootCmd.AddCommand(ffmpegPathCmd)
}
