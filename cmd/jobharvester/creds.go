package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/jobharvester/internal/secrets"
)

var credsCmd = &cobra.Command{
	Use:   "creds",
	Short: "Manage provider credentials in the OS keychain",
	Long: "Stores provider credentials in the OS keychain. Keychain values are used only when\n" +
		"neither the config file nor the environment provides one.\n\n" +
		"Credential names: " + strings.Join(secrets.Names, ", "),
}

var credsSetCmd = &cobra.Command{
	Use:   "set <name> [value]",
	Short: "Store a credential (reads the value from stdin when omitted)",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runCredsSet,
}

var credsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a credential from the keychain",
	Args:  cobra.ExactArgs(1),
	RunE:  runCredsDelete,
}

func init() {
	credsCmd.AddCommand(credsSetCmd, credsDeleteCmd)
	rootCmd.AddCommand(credsCmd)
}

func runCredsSet(cmd *cobra.Command, args []string) error {
	name := args[0]
	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		fmt.Fprintf(os.Stderr, "%s: ", name)
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return errors.New("no value read from stdin")
		}
		value = strings.TrimSpace(line)
	}

	if err := secrets.Set(name, value); err != nil {
		return err
	}
	fmt.Printf("stored %s in keychain\n", name)
	return nil
}

func runCredsDelete(cmd *cobra.Command, args []string) error {
	if err := secrets.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("removed %s from keychain\n", args[0])
	return nil
}
