package main

import (
	goflag "flag"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "cuberender",
		Short:        "Render quaternion and matrix driven cubes to WebP frames",
		SilenceUsage: true,
	}
	root.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	root.AddCommand(newRenderCommand(), newInspectCommand())
	return root
}
