// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rapidgo runs the matrix-based Muskingum routing driver.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c-h-david/rapidgo/internal/config"
	"github.com/c-h-david/rapidgo/internal/driver"
	"github.com/c-h-david/rapidgo/internal/rerr"
	"github.com/c-h-david/rapidgo/internal/rlog"
	"github.com/c-h-david/rapidgo/internal/telemetry"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var namelistPath string

	root := &cobra.Command{
		Use:           "rapidgo",
		Short:         "Matrix-based Muskingum river-network discharge routing",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(namelistPath)
		},
	}
	root.Flags().StringVarP(&namelistPath, "namelist", "n", "", "path to the YAML namelist (required)")
	_ = root.MarkFlagRequired("namelist")

	root.AddCommand(newInspectCmd())
	return root
}

func runRoute(namelistPath string) error {
	nl, err := config.Load(namelistPath)
	if err != nil {
		return reportErr(err)
	}

	log, err := rlog.New(rlog.Config{Level: nl.LogLevel})
	if err != nil {
		return reportErr(err)
	}
	telemetry.Serve(nl.MetricsAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := driver.Run(ctx, nl, log); err != nil {
		return reportErr(err)
	}
	return nil
}

func reportErr(err error) error {
	if e, ok := rerr.As(err); ok {
		fmt.Fprintf(os.Stderr, "ERROR - %s\n", e.Error())
	} else {
		fmt.Fprintf(os.Stderr, "ERROR - %v\n", err)
	}
	return err
}
