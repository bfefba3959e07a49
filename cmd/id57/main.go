package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"
	"lukechampine.com/uint128"

	"github.com/dmitrymomot/id57"
	"github.com/dmitrymomot/id57/base57"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "id57",
		Short:         "Sortable base57 identifier tool",
		Long:          "id57 generates, encodes, decodes, and inspects 33-character sortable base57 identifiers.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// generate
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate identifiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			tsArg, _ := cmd.Flags().GetString("timestamp")
			payloadArg, _ := cmd.Flags().GetString("payload")
			strict, _ := cmd.Flags().GetBool("strict")

			var opts []id57.Option
			if strict {
				opts = append(opts, id57.Strict())
			}
			if tsArg != "" {
				ts, err := parseUint128(tsArg)
				if err != nil {
					return fmt.Errorf("invalid timestamp: %w", err)
				}
				opts = append(opts, id57.WithTimestamp(ts))
			}
			if payloadArg != "" {
				payload, err := parseUint128(payloadArg)
				if err != nil {
					return fmt.Errorf("invalid payload: %w", err)
				}
				opts = append(opts, id57.WithPayload(payload))
			}

			for i := 0; i < count; i++ {
				id, err := id57.New(opts...)
				if err != nil {
					return err
				}
				fmt.Println(id)
			}
			return nil
		},
	}
	generateCmd.Flags().IntP("count", "n", 1, "number of identifiers to generate")
	generateCmd.Flags().String("timestamp", "", "explicit timestamp (decimal microseconds since the unix epoch)")
	generateCmd.Flags().String("payload", "", "explicit payload (decimal, up to 128 bits)")
	generateCmd.Flags().Bool("strict", false, "fail when the timestamp exceeds the fixed width")
	rootCmd.AddCommand(generateCmd)

	// encode
	encodeCmd := &cobra.Command{
		Use:   "encode <decimal>",
		Short: "Encode a non-negative integer as base57",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseUint128(args[0])
			if err != nil {
				return err
			}
			pad, _ := cmd.Flags().GetInt("pad")
			if pad > 0 {
				fmt.Println(base57.EncodeToWidth(v, pad))
			} else {
				fmt.Println(base57.Encode(v))
			}
			return nil
		},
	}
	encodeCmd.Flags().Int("pad", 0, "left-pad the encoding to this width with the zero digit")
	rootCmd.AddCommand(encodeCmd)

	// decode
	decodeCmd := &cobra.Command{
		Use:   "decode <base57>",
		Short: "Decode a base57 string to its decimal value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := base57.Decode(args[0])
			if err != nil {
				return err
			}
			fmt.Println(v.String())
			return nil
		},
	}
	rootCmd.AddCommand(decodeCmd)

	// inspect
	inspectCmd := &cobra.Command{
		Use:   "inspect <identifier>",
		Short: "Split an identifier into its timestamp and payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := id57.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("timestamp: %s\n", id.Timestamp.String())
			if t := id.Time(); !t.IsZero() {
				fmt.Printf("time:      %s\n", t.UTC().Format("2006-01-02T15:04:05.000000Z07:00"))
			}
			fmt.Printf("payload:   %s\n", id.Payload.String())
			return nil
		},
	}
	rootCmd.AddCommand(inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseUint128 converts a decimal string into a 128-bit unsigned integer,
// rejecting negatives and values wider than 128 bits via id57.FromBig.
func parseUint128(s string) (uint128.Uint128, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return uint128.Zero, id57.ErrNotConvertible
	}
	return id57.FromBig(i)
}
