// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package arith

import (
	"github.com/globalsign/mgo/bson"
	"github.com/pkg/errors"
)

// GetBSON implements bson.Getter, storing d as a Decimal128 so that exact
// results are persisted without passing through float64.
func (d *Decimal) GetBSON() (interface{}, error) {
	v, err := bson.ParseDecimal128(d.String())
	if err != nil {
		return nil, errors.Wrapf(ErrOutOfRange, "%s as Decimal128: %v", d, err)
	}
	return v, nil
}

// SetBSON implements bson.Setter, reading a Decimal128.
func (d *Decimal) SetBSON(raw bson.Raw) error {
	var w bson.Decimal128
	if err := raw.Unmarshal(&w); err != nil {
		return errors.Wrap(err, "SetBSON")
	}
	return d.SetString(w.String())
}

// GetBSON implements bson.Getter, storing p as its scale and rounding rule
// name.
func (p Policy) GetBSON() (interface{}, error) {
	return policyDoc{Scale: int(p.scale), Rounding: p.rounding.String()}, nil
}

// SetBSON implements bson.Setter. The stored policy is validated as
// NewPolicyWithRounding would.
func (p *Policy) SetBSON(raw bson.Raw) error {
	var doc policyDoc
	if err := raw.Unmarshal(&doc); err != nil {
		return errors.Wrap(err, "SetBSON")
	}
	r, err := ParseRoundingRule(doc.Rounding)
	if err != nil {
		return err
	}
	v, err := NewPolicyWithRounding(doc.Scale, r)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

type policyDoc struct {
	Scale    int    `bson:"scale"`
	Rounding string `bson:"rounding"`
}
