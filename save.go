package trajectory

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tphakala/go-trajectory/internal/npyout"
)

// ArrayInfo describes one saved array.
type ArrayInfo struct {
	Name  string `yaml:"name"`
	File  string `yaml:"file"`
	Shape []int  `yaml:"shape"`
}

// Manifest lists the arrays written by Dataset.Save.
type Manifest struct {
	Scene  string      `yaml:"scene"`
	Layout Layout      `yaml:"layout"`
	Frames int         `yaml:"frames"`
	Arrays []ArrayInfo `yaml:"arrays"`
}

// Save writes the dataset arrays and a manifest.yaml into dir, creating it
// if needed:
//
//	<object>.npy        positions, N x 3
//	<camera>.npy        world matrices, F x 4 x 4
//	<entity>_time.npy   times aligned with the entity's timeline
//	camera_pos.npy      static camera position, if any
func (d *Dataset) Save(dir string) (*Manifest, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	m := &Manifest{Scene: d.Scene, Layout: d.Layout, Frames: d.Frames}
	add := func(name, file string, shape ...int) {
		m.Arrays = append(m.Arrays, ArrayInfo{Name: name, File: file, Shape: shape})
	}

	for _, tr := range d.Trajectories {
		file := tr.Name + positionsSuffix
		path := filepath.Join(dir, file)

		if tr.Role == RoleObject {
			if err := npyout.WritePoints(path, tr.Positions); err != nil {
				return nil, err
			}
			add(tr.Name, file, len(tr.Positions), euclideanDim)
		} else {
			mats := d.Cameras[tr.Name]
			if err := npyout.WriteMatrices(path, RowMajor(mats)); err != nil {
				return nil, err
			}
			add(tr.Name, file, len(mats), homogeneousDim, homogeneousDim)
		}

		times := d.FrameTimes[tr.Name]
		timeFile := tr.Name + timesSuffix
		if err := npyout.WriteVector(filepath.Join(dir, timeFile), times); err != nil {
			return nil, err
		}
		add(tr.Name+"_time", timeFile, len(times))
	}

	if d.StaticCamera != nil {
		if err := npyout.WriteVector(filepath.Join(dir, staticCameraFile), d.StaticCamera[:]); err != nil {
			return nil, err
		}
		add("camera_pos", staticCameraFile, euclideanDim)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, manifestFile), data, filePerm); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}
	return m, nil
}
