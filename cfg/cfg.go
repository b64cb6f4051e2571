/*
 * cfg.go, part of lammpstrj.
 *
 * Copyright 2026 The lammpstrj Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package cfg reads the parameters of an analysis from a YAML file.
// Every parameter can be overridden with an environment variable.
package cfg

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Cfg contains the parameters given in the configuration file. It can be
// obtained through New or built by hand, in which case Check should be called
// before using it.
type Cfg struct {
	// Traj is the trajectory file. It may be compressed (.gz, .zst)
	Traj string `yaml:"traj" env:"LAMMPSTRJ_TRAJ"`

	// Mesh is the largest edge of a density cell, in box units
	Mesh float64 `yaml:"mesh" env:"LAMMPSTRJ_MESH"`

	// Threshold is the lowest density of a cell that belongs to a cluster
	Threshold float64 `yaml:"threshold" env:"LAMMPSTRJ_THRESHOLD"`

	// Type is the atom type to bin. 0 means every atom
	Type int `yaml:"type" env:"LAMMPSTRJ_TYPE"`

	// VTKPrefix, if set, is the prefix of the VTK files written for each frame
	VTKPrefix string `yaml:"vtkPrefix" env:"LAMMPSTRJ_VTK_PREFIX"`

	// Interval is the number of timesteps between two frames of Traj
	Interval int `yaml:"interval" env:"LAMMPSTRJ_INTERVAL"`

	// Plot, if set, is the image where the results are plotted
	Plot string `yaml:"plot" env:"LAMMPSTRJ_PLOT"`
}

// New opens and decodes the configuration file at path, applies the
// environment overrides and calls Check.
func New(path string) (*Cfg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := Cfg{Interval: 1}
	dec := yaml.NewDecoder(bufio.NewReader(f))
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}
	return &c, nil
}

// Check returns an error if a field doesn't meet the requirements.
func (c *Cfg) Check() error {
	if c.Traj == "" {
		return errors.New("traj must be given")
	}
	if c.Mesh <= 0 {
		return errors.New("mesh must be greater than 0")
	}
	if c.Threshold < 0 {
		return errors.New("threshold cannot be lower than 0")
	}
	if c.Type < 0 {
		return errors.New("type cannot be lower than 0")
	}
	if c.Interval <= 0 {
		return errors.New("interval must be greater than 0")
	}
	return nil
}
