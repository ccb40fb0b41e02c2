package flags

import (
	"github.com/spf13/cobra"
)

var debugFlag bool

func AddDebugFlag(cmd *cobra.Command) {
	usage := "If set, writes the engine log to .pentris.log unless log_file is configured."
	cmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, usage)
	cmd.PersistentFlags().MarkHidden("debug")
}

func Debug() bool {
	return debugFlag
}
