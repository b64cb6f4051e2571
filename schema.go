/*
 * schema.go, part of lammpstrj.
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

package lammpstrj

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const absent = -1

// schema maps the columns declared in an "ITEM: ATOMS" line to their
// position in the data lines. It is valid for one frame only.
type schema struct {
	ncols  int //number of declared columns
	id     int
	typ    int
	abs    [3]int //x y z
	scaled [3]int //xs ys zs
	vel    [3]int //vx vy vz
}

// parseSchema parses an "ITEM: ATOMS" line. Labels it doesn't know are
// ignored, but the id column must be present.
func parseSchema(line string) (*schema, error) {
	fields := strings.Fields(strings.TrimPrefix(line, atomsTag))
	s := &schema{
		ncols:  len(fields),
		id:     absent,
		typ:    absent,
		abs:    [3]int{absent, absent, absent},
		scaled: [3]int{absent, absent, absent},
		vel:    [3]int{absent, absent, absent},
	}
	for k, v := range fields {
		switch v {
		case "id":
			s.id = k
		case "type":
			s.typ = k
		case "x", "y", "z":
			s.abs[v[0]-'x'] = k
		case "xs", "ys", "zs":
			s.scaled[v[0]-'x'] = k
		case "vx", "vy", "vz":
			s.vel[v[1]-'x'] = k
		}
	}
	if s.id == absent {
		return nil, fmt.Errorf("no id column in '%s'", line)
	}
	return s, nil
}

// hasCoord tells whether the axis has an absolute or a scaled column.
func (s *schema) hasCoord(axis int) bool {
	return s.abs[axis] != absent || s.scaled[axis] != absent
}

// decode fills a from the fields of one data line. The absolute coordinate
// of an axis is set before the scaled one, so if both are declared, the
// scaled one wins. Every axis with a coordinate column is wrapped once
// into the box.
func (s *schema) decode(fields []string, si *SystemInfo, a *Atom) error {
	if len(fields) < s.ncols {
		return fmt.Errorf("%d fields in a data line, but %d columns declared", len(fields), s.ncols)
	}
	var err error
	if a.ID, err = strconv.Atoi(fields[s.id]); err != nil {
		return fmt.Errorf("can't parse id '%s'", fields[s.id])
	}
	if s.typ != absent {
		if a.Type, err = strconv.Atoi(fields[s.typ]); err != nil {
			return fmt.Errorf("can't parse type '%s'", fields[s.typ])
		}
	}
	for k := 0; k < 3; k++ {
		if c := s.abs[k]; c != absent {
			if a.Pos[k], err = parseFloat(fields[c]); err != nil {
				return err
			}
		}
		if c := s.scaled[k]; c != absent {
			f, err := parseFloat(fields[c])
			if err != nil {
				return err
			}
			a.Pos[k] = si.Unscale(k, f)
		}
		if s.hasCoord(k) {
			a.Pos[k] = si.Wrap(k, a.Pos[k])
		}
		if c := s.vel[k]; c != absent {
			if a.Vel[k], err = parseFloat(fields[c]); err != nil {
				return err
			}
		}
	}
	return nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("can't parse number '%s'", s)
	}
	return f, nil
}
