package main

import (
	"errors"
	"fmt"
	"os"

	"fjacquet/phonebill/cmd/bill"
	"fjacquet/phonebill/cmd/extract"
	"fjacquet/phonebill/cmd/root"
	"fjacquet/phonebill/internal/config"
	"fjacquet/phonebill/internal/parsererror"
)

func init() {
	// Load .env before any flag or config lookup.
	config.LoadEnv()

	root.Init()

	root.Cmd.AddCommand(bill.Cmd)
	root.Cmd.AddCommand(extract.Cmd)
}

func main() {
	err := root.Cmd.Execute()
	if err == nil {
		return
	}

	var usage *parsererror.UsageError
	if errors.As(err, &usage) {
		fmt.Println(usage.Error())
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(root.ExitCode(err))
}
