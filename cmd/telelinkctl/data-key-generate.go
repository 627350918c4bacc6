package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"telelink/pkg/crypt"
)

// dataKeyGenerateCmd represents the data-key > generate command
var dataKeyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a data encryption key",
	Long: `
Generate a data encryption key

Use this command to generate a new Base64-encoded 256 bit data encryption key.
Once generated, this key should be placed into the environment of the telelink
server. It will be used to encrypt all Telegram identifiers stored in the
database.

Example:

$ export TELELINK_DATA_KEY="$(telelinkctl data-key generate)"
`,
	Run: func(cmd *cobra.Command, args []string) {
		bytes, err := crypt.GenerateDataKey()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to generate data key:", err)
			os.Exit(1)
		}
		fmt.Printf("%s", base64.StdEncoding.Strict().EncodeToString(bytes))
	},
}

func init() {
	dataKeyCmd.AddCommand(dataKeyGenerateCmd)
}
