// Command kyberctl drives Kyber key generation, encapsulation, and
// decapsulation from the shell, for scripting and manual KAT spot-checks.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	kyber "github.com/TheBlueFlame121/kyber"
)

var modeFlag = &cli.StringFlag{
	Name:  "mode",
	Usage: "Kyber parameter set: 512, 768, or 1024",
	Value: "768",
}

func paramSetFor(mode string) (*kyber.ParameterSet, error) {
	switch mode {
	case "512":
		return kyber.Kyber512, nil
	case "768":
		return kyber.Kyber768, nil
	case "1024":
		return kyber.Kyber1024, nil
	default:
		return nil, fmt.Errorf("unknown mode %q, want one of 512, 768, 1024", mode)
	}
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.App{
		Name:  "kyberctl",
		Usage: "CRYSTALS-Kyber key encapsulation from the command line",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			keygenCommand,
			encapCommand,
			decapCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("kyberctl failed")
	}
}

var keygenCommand = &cli.Command{
	Name:  "keygen",
	Usage: "generate a Kyber key pair, writing hex-encoded pk/sk to stdout",
	Flags: []cli.Flag{modeFlag},
	Action: func(c *cli.Context) error {
		pr, err := paramSetFor(c.String("mode"))
		if err != nil {
			return err
		}

		sk, err := kyber.GenerateKeyPair(pr, nil)
		if err != nil {
			return err
		}

		log.Debug().
			Str("mode", pr.Name()).
			Int("pk_bytes", pr.PublicKeySize()).
			Int("sk_bytes", pr.PrivateKeySize()).
			Msg("generated key pair")

		fmt.Printf("pk: %s\n", hex.EncodeToString(sk.Public().Bytes()))
		fmt.Printf("sk: %s\n", hex.EncodeToString(sk.Bytes()))
		return nil
	},
}

var encapCommand = &cli.Command{
	Name:      "encap",
	Usage:     "encapsulate a shared secret under a hex-encoded public key",
	ArgsUsage: "<pk-hex>",
	Flags:     []cli.Flag{modeFlag},
	Action: func(c *cli.Context) error {
		pr, err := paramSetFor(c.String("mode"))
		if err != nil {
			return err
		}
		if c.Args().Len() != 1 {
			return cli.Exit("expected exactly one argument: <pk-hex>", 1)
		}

		pkBytes, err := hex.DecodeString(c.Args().First())
		if err != nil {
			return fmt.Errorf("decoding pk: %w", err)
		}

		pk, err := kyber.PublicKeyFromBytes(pr, pkBytes)
		if err != nil {
			return err
		}

		ct, ss, err := kyber.KEMEncrypt(nil, pk)
		if err != nil {
			return err
		}

		log.Debug().Int("ct_bytes", len(ct)).Msg("encapsulated")

		fmt.Printf("ct: %s\n", hex.EncodeToString(ct))
		fmt.Printf("ss: %s\n", hex.EncodeToString(ss))
		return nil
	},
}

var decapCommand = &cli.Command{
	Name:      "decap",
	Usage:     "decapsulate a shared secret given a hex-encoded sk and ciphertext",
	ArgsUsage: "<sk-hex> <ct-hex>",
	Flags:     []cli.Flag{modeFlag},
	Action: func(c *cli.Context) error {
		pr, err := paramSetFor(c.String("mode"))
		if err != nil {
			return err
		}
		if c.Args().Len() != 2 {
			return cli.Exit("expected exactly two arguments: <sk-hex> <ct-hex>", 1)
		}

		skBytes, err := hex.DecodeString(c.Args().Get(0))
		if err != nil {
			return fmt.Errorf("decoding sk: %w", err)
		}
		ctBytes, err := hex.DecodeString(c.Args().Get(1))
		if err != nil {
			return fmt.Errorf("decoding ct: %w", err)
		}

		sk, err := kyber.PrivateKeyFromBytes(pr, skBytes)
		if err != nil {
			return err
		}

		ss, err := kyber.KEMDecrypt(sk, ctBytes)
		if err != nil {
			return err
		}

		fmt.Printf("ss: %s\n", hex.EncodeToString(ss))
		return nil
	},
}
