// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rolelattice/network"
	"github.com/katalvlaran/rolelattice/roles"
)

var (
	// ErrUnknownStructure reports a structure name other than relation, equivalence or ranking.
	ErrUnknownStructure = errors.New("rolefix: unknown structure")

	// ErrUnknownDirection reports a direction other than restriction or extension.
	ErrUnknownDirection = errors.New("rolefix: unknown direction")

	// ErrUnknownEngine reports an engine other than covers or projections.
	ErrUnknownEngine = errors.New("rolefix: unknown engine")
)

// Config describes one enumeration run. Actors fixes the index order of the
// listed actors; actors first named in Ties follow in order of appearance.
type Config struct {
	Actors    []string    `yaml:"actors"`
	Ties      [][2]string `yaml:"ties"`
	Loops     bool        `yaml:"loops"`
	Structure string      `yaml:"structure"`
	Direction string      `yaml:"direction"`
	Engine    string      `yaml:"engine"`
	Limit     int         `yaml:"limit"`
}

// defaultConfig returns the settings used for keys the file leaves out.
func defaultConfig() Config {
	return Config{
		Structure: "equivalence",
		Direction: roles.Restriction.String(),
		Engine:    "covers",
	}
}

// loadConfig reads and validates a YAML config file.
func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	return parseConfig(data)
}

func parseConfig(data []byte) (Config, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Structure {
	case "relation", "equivalence", "ranking":
	default:
		return fmt.Errorf("%q: %w", c.Structure, ErrUnknownStructure)
	}
	if _, err := c.direction(); err != nil {
		return err
	}
	switch c.Engine {
	case "covers", "projections":
	default:
		return fmt.Errorf("%q: %w", c.Engine, ErrUnknownEngine)
	}
	_, err := c.network()

	return err
}

func (c Config) direction() (roles.Direction, error) {
	switch c.Direction {
	case roles.Restriction.String():
		return roles.Restriction, nil
	case roles.Extension.String():
		return roles.Extension, nil
	}

	return 0, fmt.Errorf("%q: %w", c.Direction, ErrUnknownDirection)
}

// network builds the tie network over the actors.
func (c Config) network() (*network.Network, error) {
	var opts []network.Option
	if c.Loops {
		opts = append(opts, network.WithLoops())
	}
	net := network.New(opts...)
	for _, id := range c.Actors {
		if _, err := net.AddActor(id); err != nil {
			return nil, fmt.Errorf("actors: %w", err)
		}
	}
	for _, t := range c.Ties {
		if err := net.AddTie(t[0], t[1]); err != nil {
			return nil, fmt.Errorf("ties: %w", err)
		}
	}

	return net, nil
}

// legend names the actor behind every index, e.g. "0=alice 1=bob".
func legend(net *network.Network) string {
	var b strings.Builder
	for i, id := range net.Actors() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d=%s", i, id)
	}

	return b.String()
}
