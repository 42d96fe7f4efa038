// Constants generator: re-derives every distinguished constant of the scalar
// field from the modulus alone and emits fr/constants.go. Divergent constant
// literals between drafts of a field implementation are a real hazard; only
// one set is consistent with the modulus, so nothing numeric in the fr
// package is hand-written.
package main

import (
	"fmt"
	"math/big"
	"os"
	"os/exec"
	"strings"

	"github.com/consensys/bavard"
	"github.com/consensys/bn254fr/logger"
)

const copyrightHolder = "Consensys Software Inc."

// BN254 scalar field modulus and the smallest generator of its
// multiplicative group.
const (
	modulusDec = "21888242871839275222246405745257275088548364400416034343698204186575808495617"
	generator  = 7
)

//go:generate go run main.go
func main() {
	log := logger.Logger().With().Str("component", "generator").Logger()

	cfg, err := newConfig(modulusDec, generator)
	if err != nil {
		log.Fatal().Err(err).Msg("deriving field constants")
	}
	log.Info().Uint32("s", cfg.S).Str("rootOfUnity", cfg.RootOfUnityDec).Msg("constants derived and verified")

	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "bn254fr")
	if err := bgen.Generate(cfg, "fr", "templates", bavard.Entry{
		File:      "../../fr/constants.go",
		Templates: []string{"constants.go.tmpl"},
	}); err != nil {
		log.Fatal().Err(err).Msg("emitting fr/constants.go")
	}

	runCmd("gofmt", "-w", "../../fr")
}

type frConfig struct {
	ModulusDec     string
	ModulusHex     string
	Generator      uint64
	S              uint32
	Q              []string // limbs, hex
	QInvNeg        string
	RSquare        []string
	QMinus2        []string
	QMinus1Over2   []string
	TMinus1Over2   []string
	RootOfUnity    []string
	RootOfUnityDec string
	RootOfUnityInv []string
	TwoInv         []string
	Delta          []string
}

func newConfig(modulus string, g uint64) (*frConfig, error) {
	q, ok := new(big.Int).SetString(modulus, 10)
	if !ok {
		return nil, fmt.Errorf("invalid modulus %q", modulus)
	}
	if !q.ProbablyPrime(20) {
		return nil, fmt.Errorf("modulus is not prime")
	}

	one := big.NewInt(1)
	r := new(big.Int).Lsh(one, 256)
	w := new(big.Int).Lsh(one, 64) // word size

	// qInvNeg = -q⁻¹ mod 2⁶⁴
	qInvNeg := new(big.Int).ModInverse(q, w)
	qInvNeg.Sub(w, qInvNeg)

	rSquare := new(big.Int).Mul(r, r)
	rSquare.Mod(rSquare, q)

	// q - 1 = 2^s · t, t odd
	t := new(big.Int).Sub(q, one)
	var s uint32
	for t.Bit(0) == 0 {
		t.Rsh(t, 1)
		s++
	}

	gBig := new(big.Int).SetUint64(g)
	root := new(big.Int).Exp(gBig, t, q)

	// order checks: root^(2^s) == 1 and root^(2^(s-1)) != 1
	e := new(big.Int).Lsh(one, uint(s))
	if new(big.Int).Exp(root, e, q).Cmp(one) != 0 {
		return nil, fmt.Errorf("root of unity order check failed: root^(2^%d) != 1", s)
	}
	e.Rsh(e, 1)
	if new(big.Int).Exp(root, e, q).Cmp(one) == 0 {
		return nil, fmt.Errorf("root of unity order check failed: root^(2^%d) == 1", s-1)
	}

	qMinus2 := new(big.Int).Sub(q, big.NewInt(2))
	rootInv := new(big.Int).Exp(root, qMinus2, q)
	twoInv := new(big.Int).Exp(big.NewInt(2), qMinus2, q)

	check := new(big.Int).Lsh(twoInv, 1)
	if check.Mod(check, q).Cmp(one) != 0 {
		return nil, fmt.Errorf("twoInv check failed: 2·2⁻¹ != 1")
	}

	delta := new(big.Int).Exp(gBig, new(big.Int).Lsh(one, uint(s)), q)

	qMinus1Over2 := new(big.Int).Sub(q, one)
	qMinus1Over2.Rsh(qMinus1Over2, 1)

	// g must be a non-residue, or it generates a proper subgroup
	if new(big.Int).Exp(gBig, qMinus1Over2, q).Cmp(new(big.Int).Sub(q, one)) != 0 {
		return nil, fmt.Errorf("%d is a quadratic residue, not a generator", g)
	}

	tMinus1Over2 := new(big.Int).Sub(t, one)
	tMinus1Over2.Rsh(tMinus1Over2, 1)

	return &frConfig{
		ModulusDec:     q.Text(10),
		ModulusHex:     q.Text(16),
		Generator:      g,
		S:              s,
		Q:              limbs(q),
		QInvNeg:        fmt.Sprintf("0x%016x", qInvNeg),
		RSquare:        limbs(rSquare),
		QMinus2:        limbs(qMinus2),
		QMinus1Over2:   limbs(qMinus1Over2),
		TMinus1Over2:   limbs(tMinus1Over2),
		RootOfUnity:    limbs(root),
		RootOfUnityDec: root.Text(10),
		RootOfUnityInv: limbs(rootInv),
		TwoInv:         limbs(twoInv),
		Delta:          limbs(delta),
	}, nil
}

// limbs formats v as four little-endian 64-bit hex limbs.
func limbs(v *big.Int) []string {
	mask := new(big.Int).SetUint64(^uint64(0))
	res := make([]string, 4)
	t := new(big.Int).Set(v)
	for i := range res {
		res[i] = fmt.Sprintf("0x%016x", new(big.Int).And(t, mask).Uint64())
		t.Rsh(t, 64)
	}
	if t.Sign() != 0 {
		panic("value does not fit on 4 limbs")
	}
	return res
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		os.Exit(1)
	}
}
