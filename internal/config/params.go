package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/holiman/uint256"

	"github.com/sbilibin2017/gw-trust-lending/internal/models"
	"github.com/sbilibin2017/gw-trust-lending/internal/services"
)

// ParamsFile mirrors the TOML parameter file. Unset keys keep their defaults.
type ParamsFile struct {
	TrustIncrease    *uint64 `toml:"TrustIncrease"`
	TrustDecrease    *uint64 `toml:"TrustDecrease"`
	BaseInterestRate *uint64 `toml:"BaseInterestRate"`
	MaxInterestRate  *uint64 `toml:"MaxInterestRate"`
	MinLoanAmount    string  `toml:"MinLoanAmount"`
	MinLoanDuration  string  `toml:"MinLoanDuration"`
	MaxLoanDuration  string  `toml:"MaxLoanDuration"`
	DefaultCooldown  string  `toml:"DefaultCooldown"`
	LowTrustLimit    string  `toml:"LowTrustLimit"`
	MediumTrustLimit string  `toml:"MediumTrustLimit"`
	HighTrustLimit   string  `toml:"HighTrustLimit"`
}

// LoadParameters reads protocol parameters from path. An empty path yields the defaults.
func LoadParameters(path string) (models.ParameterSet, error) {
	if path == "" {
		return services.DefaultParameters(), nil
	}

	var file ParamsFile
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return models.ParameterSet{}, fmt.Errorf("read parameter file %s: %w", path, err)
	}
	return file.resolve(meta)
}

// DecodeParameters parses parameters from TOML text.
func DecodeParameters(data string) (models.ParameterSet, error) {
	var file ParamsFile
	meta, err := toml.Decode(data, &file)
	if err != nil {
		return models.ParameterSet{}, err
	}
	return file.resolve(meta)
}

func (f ParamsFile) resolve(meta toml.MetaData) (models.ParameterSet, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return models.ParameterSet{}, fmt.Errorf("unknown parameter keys: %s", strings.Join(keys, ", "))
	}

	p := services.DefaultParameters()
	setUint(&p.TrustIncrease, f.TrustIncrease)
	setUint(&p.TrustDecrease, f.TrustDecrease)
	setUint(&p.BaseInterestRate, f.BaseInterestRate)
	setUint(&p.MaxInterestRate, f.MaxInterestRate)

	amounts := []struct {
		name  string
		raw   string
		field **uint256.Int
	}{
		{"MinLoanAmount", f.MinLoanAmount, &p.MinLoanAmount},
		{"LowTrustLimit", f.LowTrustLimit, &p.LowTrustLimit},
		{"MediumTrustLimit", f.MediumTrustLimit, &p.MediumTrustLimit},
		{"HighTrustLimit", f.HighTrustLimit, &p.HighTrustLimit},
	}
	for _, a := range amounts {
		if a.raw == "" {
			continue
		}
		v, err := uint256.FromDecimal(a.raw)
		if err != nil {
			return models.ParameterSet{}, fmt.Errorf("%s: %w", a.name, err)
		}
		*a.field = v
	}

	durations := []struct {
		name  string
		raw   string
		field *time.Duration
	}{
		{"MinLoanDuration", f.MinLoanDuration, &p.MinLoanDuration},
		{"MaxLoanDuration", f.MaxLoanDuration, &p.MaxLoanDuration},
		{"DefaultCooldown", f.DefaultCooldown, &p.DefaultCooldown},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return models.ParameterSet{}, fmt.Errorf("%s: %w", d.name, err)
		}
		*d.field = v
	}

	if err := services.ValidateParameters(p); err != nil {
		return models.ParameterSet{}, err
	}
	return p, nil
}

func setUint(dst *uint64, v *uint64) {
	if v != nil {
		*dst = *v
	}
}
