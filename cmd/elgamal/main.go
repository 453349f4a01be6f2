package main

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	ui "github.com/manifoldco/promptui"
	"github.com/mr-shifu/textbook-pke/config"
	"github.com/mr-shifu/textbook-pke/core/elgamal"
	"github.com/mr-shifu/textbook-pke/lib/display"
	"github.com/mr-shifu/textbook-pke/log"
	sw_elgamal "github.com/mr-shifu/textbook-pke/pkg/cryptosuite/sw/elgamal"
	"github.com/mr-shifu/textbook-pke/pkg/keystore"
	"github.com/mr-shifu/textbook-pke/pkg/vault"
)

var (
	keysPrint   = color.New(color.FgCyan, color.Bold)
	valuesPrint = color.New(color.FgMagenta)
	infoPrint   = color.New(color.FgGreen)
	errorPrint  = color.New(color.FgHiRed)
)

// promptFunc asks the user for one line of input.
type promptFunc func(label string) (string, error)

func terminalPrompt(label string) (string, error) {
	p := ui.Prompt{
		Label: label,
	}
	return p.Run()
}

func main() {
	fs := config.Flags(filepath.Base(os.Args[0]))
	if err := fs.Parse(os.Args[1:]); err != nil {
		errorPrint.Fprintln(os.Stderr, err)
		return
	}
	cfg, err := config.Load(fs)
	if err != nil {
		errorPrint.Fprintln(os.Stderr, err)
		return
	}
	log.Init(cfg.LogLevel, cfg.LogOutput)
	defer log.Sync()
	log.Infow("starting "+filepath.Base(os.Args[0]), "session", uuid.New().String(), "dataDir", cfg.DataDir)

	if err := run(cfg, terminalPrompt, color.Output); err != nil {
		log.Errorw("elgamal run failed", "error", err)
		errorPrint.Fprintln(os.Stderr, err)
	}
}

func newKeyManager(cfg *config.Config) *sw_elgamal.ElgamalKeyManager {
	ks := keystore.NewKeystore(vault.NewFileVault(cfg.DataDir))
	return sw_elgamal.NewElgamalKeyManager(ks, &sw_elgamal.Config{
		ParamsKeyID:  cfg.ElGamal.ParamsFile,
		PublicKeyID:  cfg.ElGamal.PublicKeyFile,
		PrivateKeyID: cfg.ElGamal.PrivateKeyFile,
		CiphertextID: cfg.ElGamal.CiphertextFile,
	})
}

func run(cfg *config.Config, prompt promptFunc, out io.Writer) error {
	msg, err := prompt("Enter the plaintext")
	if err != nil {
		return err
	}
	printValue(out, "Plaintext", msg)

	mgr := newKeyManager(cfg)
	key, err := mgr.GenerateKey()
	if err != nil {
		return err
	}
	pub := key.PublicKeyRaw()
	printValue(out, "g used", pub.G.String())
	printValue(out, "g^a used", pub.H.String())
	printValue(out, "Key fingerprint", hex.EncodeToString(key.SKI()))

	ct, nonce, err := key.Encrypt(rand.Reader, msg)
	if err != nil {
		return err
	}
	printValue(out, "g^k used", ct.Shared.String())
	printValue(out, "g^ak used", elgamal.SharedSecret(pub, nonce).String())
	if err := mgr.StoreCiphertext(ct); err != nil {
		return err
	}

	keysPrint.Fprintln(out, "Ciphertext:")
	for _, line := range display.Lines(ct.String(), display.LineLength) {
		valuesPrint.Fprintln(out, line)
	}

	// the shared value g^k is taken from the stored ciphertext, so the
	// re-entered elements decrypt the same way in a later run
	stored, err := mgr.LoadCiphertext()
	if err != nil {
		return err
	}
	text, err := prompt("Enter the ciphertext (empty to use the stored one)")
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) != "" {
		if stored, err = elgamal.ParseCiphertext(text, stored.Shared); err != nil {
			return err
		}
	}

	decrypted, err := mgr.Decrypt(stored)
	if err != nil {
		return err
	}
	printValue(out, "Decrypted text", decrypted)
	if decrypted == msg {
		infoPrint.Fprintln(out, "decrypted text matches the plaintext")
	}
	return nil
}

func printValue(out io.Writer, name, value string) {
	keysPrint.Fprint(out, name+": ")
	valuesPrint.Fprintln(out, value)
}
