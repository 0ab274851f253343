package commands

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"garner/internal/domain"
	"garner/internal/keycodec"
	"garner/internal/onion"
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate key material",
	}
	cmd.AddCommand(generateKeypairCmd())
	return cmd
}

// generate keypair: print the private key UR, then the public key UR,
// one per line. The private key is never written anywhere else.
func generateKeypairCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keypair",
		Short: "Generate a signing keypair and print both UR encodings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var seed domain.SigningPrivateKey
			if _, err := rand.Read(seed[:]); err != nil {
				return fmt.Errorf("generating key: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), keycodec.EncodePrivate(seed))
			fmt.Fprintln(cmd.OutOrStdout(), keycodec.EncodePublic(onion.PublicKey(seed)))
			return nil
		},
	}
}
