// Command slhdsa drives the masked SLH-DSA-SHAKE core from the shell:
// key generation, signing, verification, and the self-test harness.
// Not part of the core (§6 of the package spec lists the CLI as an
// external collaborator); every byte it touches is hex-encoded.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"codeberg.org/maskedsig/slhdsa"
	"codeberg.org/maskedsig/slhdsa/internal/kat"
)

var paramSets = map[string]slhdsa.Params{
	"128s": slhdsa.Params128s,
	"128f": slhdsa.Params128f,
	"192s": slhdsa.Params192s,
	"192f": slhdsa.Params192f,
	"256s": slhdsa.Params256s,
	"256f": slhdsa.Params256f,
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "keygen":
		cmdKeygen(os.Args[2:])
	case "sign":
		cmdSign(os.Args[2:])
	case "verify":
		cmdVerify(os.Args[2:])
	case "kat":
		cmdKat(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: slhdsa <keygen|sign|verify|kat> [flags]")
}

func param(name string) slhdsa.Params {
	p, ok := paramSets[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "slhdsa: unknown parameter set %q\n", name)
		os.Exit(1)
	}
	return p
}

func cmdKeygen(args []string) {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	set := fs.String("set", "128s", "parameter set: 128s,128f,192s,192f,256s,256f")
	fs.Parse(args)

	p := param(*set)
	pub, priv, err := slhdsa.GenerateKey(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slhdsa: keygen: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("public  %s\n", hex.EncodeToString(encodePublic(pub)))
	fmt.Printf("private %s\n", hex.EncodeToString(encodePrivate(priv)))
}

func cmdSign(args []string) {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	set := fs.String("set", "128s", "parameter set")
	sk := fs.String("private", "", "hex-encoded private key")
	msg := fs.String("message", "", "hex-encoded message")
	fs.Parse(args)

	p := param(*set)
	priv, err := decodePrivate(p, *sk)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slhdsa: sign: %v\n", err)
		os.Exit(1)
	}
	message, err := hex.DecodeString(*msg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slhdsa: sign: bad message hex: %v\n", err)
		os.Exit(1)
	}
	sig, err := priv.Sign(message, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slhdsa: sign: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hex.EncodeToString(sig))
}

func cmdVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	set := fs.String("set", "128s", "parameter set")
	pk := fs.String("public", "", "hex-encoded public key")
	msg := fs.String("message", "", "hex-encoded message")
	sig := fs.String("signature", "", "hex-encoded signature")
	fs.Parse(args)

	p := param(*set)
	pub, err := decodePublic(p, *pk)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slhdsa: verify: %v\n", err)
		os.Exit(1)
	}
	message, err := hex.DecodeString(*msg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slhdsa: verify: bad message hex: %v\n", err)
		os.Exit(1)
	}
	sigBytes, err := hex.DecodeString(*sig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slhdsa: verify: bad signature hex: %v\n", err)
		os.Exit(1)
	}

	if slhdsa.Verify(pub, message, sigBytes) {
		fmt.Println("OK")
		return
	}
	fmt.Println("FAIL")
	os.Exit(1)
}

func cmdKat(args []string) {
	fs := flag.NewFlagSet("kat", flag.ExitOnError)
	set := fs.String("set", "128s", "parameter set")
	fs.Parse(args)

	p := param(*set)
	if err := kat.Run(p); err != nil {
		fmt.Fprintf(os.Stderr, "slhdsa: kat: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("PASS")
}

func encodePublic(pub *slhdsa.PublicKey) []byte {
	return append(append([]byte{}, pub.PubSeed...), pub.PubRoot...)
}

func encodePrivate(priv *slhdsa.PrivateKey) []byte {
	out := append([]byte{}, priv.SKSeed...)
	out = append(out, priv.SKPRF...)
	out = append(out, priv.PubSeed...)
	out = append(out, priv.PubRoot...)
	return out
}

func decodePublic(p slhdsa.Params, s string) (*slhdsa.PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("bad public-key hex: %w", err)
	}
	if len(b) != p.PublicKeySize() {
		return nil, fmt.Errorf("public key has %d bytes, want %d", len(b), p.PublicKeySize())
	}
	return &slhdsa.PublicKey{Params: p, PubSeed: b[:p.N], PubRoot: b[p.N:]}, nil
}

func decodePrivate(p slhdsa.Params, s string) (*slhdsa.PrivateKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("bad private-key hex: %w", err)
	}
	if len(b) != p.PrivateKeySize() {
		return nil, fmt.Errorf("private key has %d bytes, want %d", len(b), p.PrivateKeySize())
	}
	return &slhdsa.PrivateKey{
		Params:  p,
		SKSeed:  b[0*p.N : 1*p.N],
		SKPRF:   b[1*p.N : 2*p.N],
		PubSeed: b[2*p.N : 3*p.N],
		PubRoot: b[3*p.N : 4*p.N],
	}, nil
}
