package main

import (
	"encoding/hex"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/google/uuid"
	ui "github.com/manifoldco/promptui"
	"github.com/mr-shifu/textbook-pke/config"
	"github.com/mr-shifu/textbook-pke/lib/display"
	"github.com/mr-shifu/textbook-pke/log"
	sw_rsa "github.com/mr-shifu/textbook-pke/pkg/cryptosuite/sw/rsa"
	"github.com/mr-shifu/textbook-pke/pkg/keystore"
	"github.com/mr-shifu/textbook-pke/pkg/vault"
)

var (
	keysPrint   = color.New(color.FgCyan, color.Bold)
	valuesPrint = color.New(color.FgMagenta)
	infoPrint   = color.New(color.FgGreen)
	errorPrint  = color.New(color.FgHiRed)
)

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
	log.Infow("starting "+filepath.Base(os.Args[0]), "session", uuid.New().String(), "dataDir", cfg.DataDir, "bits", cfg.RSABits)

	if err := run(cfg, terminalPrompt, color.Output); err != nil {
		log.Errorw("rsa run failed", "error", err)
		errorPrint.Fprintln(os.Stderr, err)
	}
}

func newKeyManager(cfg *config.Config) *sw_rsa.RSAKeyManager {
	ks := keystore.NewKeystore(vault.NewFileVault(cfg.DataDir))
	return sw_rsa.NewRSAKeyManager(ks, &sw_rsa.Config{
		PublicKeyID:  cfg.RSA.PublicKeyFile,
		PrivateKeyID: cfg.RSA.PrivateKeyFile,
		CiphertextID: cfg.RSA.CiphertextFile,
		Bits:         cfg.RSABits,
	})
}

func run(cfg *config.Config, prompt promptFunc, out io.Writer) error {
	mgr := newKeyManager(cfg)
	key, err := mgr.GenerateKey()
	if err != nil {
		return err
	}
	printValue(out, "Key fingerprint", hex.EncodeToString(key.SKI()))

	// both halves are read back from disk before use
	pub, err := mgr.GetPublicKey()
	if err != nil {
		return err
	}
	priv, err := mgr.GetPrivateKey()
	if err != nil {
		return err
	}

	msg, err := prompt("Enter the plaintext")
	if err != nil {
		return err
	}

	ct, err := pub.Encrypt(msg)
	if err != nil {
		return err
	}
	if err := mgr.StoreCiphertext(ct); err != nil {
		return err
	}
	stored, err := mgr.LoadCiphertext()
	if err != nil {
		return err
	}

	for _, chunk := range display.Chunks(stored, display.ChunkSize) {
		printValue(out, "Ciphertext", display.List(chunk))
	}

	decrypted, err := priv.Decrypt(stored)
	if err != nil {
		return err
	}
	printValue(out, "Plaintext", msg)
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
