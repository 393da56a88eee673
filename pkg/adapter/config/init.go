// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// SetDeviceID rewrites the data configuration file, so its device.id
// setting becomes id. Other settings and their comments are kept as
// is because the file is edited as a YAML node tree.
func SetDeviceID(data []byte, id uuid.UUID) ([]byte, error) {
	if id == uuid.Nil {
		return nil, errors.New("nil device id")
	}
	doc := &yaml.Node{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if l := len(doc.Content); l != 1 {
		return nil, fmt.Errorf(
			"found %d children nodes, instead of 1 mapping child", l,
		)
	}
	dev, err := child(doc.Content[0], "device", yaml.MappingNode)
	if err != nil {
		return nil, err
	}
	idn, err := child(dev, "id", yaml.ScalarNode)
	if err != nil {
		return nil, fmt.Errorf("device: %w", err)
	}
	idn.Tag = "!!str"
	idn.Style = 0
	idn.Value = id.String()
	return yaml.Marshal(doc)
}

// child finds the value node of key in the m mapping node, appending
// an empty node of the given kind if key is missing.
func child(m *yaml.Node, key string, kind yaml.Kind) (*yaml.Node, error) {
	if m.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping node (kind=%d)", m.Kind)
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value != key {
			continue
		}
		v := m.Content[i+1]
		if v.Kind != kind {
			return nil, fmt.Errorf("unexpected %q node kind: %d", key, v.Kind)
		}
		return v, nil
	}
	v := &yaml.Node{Kind: kind}
	if kind == yaml.MappingNode {
		v.Tag = "!!map"
	}
	m.Content = append(m.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, v,
	)
	return v, nil
}
