package raycast3d

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	errorsmod "cosmossdk.io/errors"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is a scene file. JSON, YAML and TOML are accepted (by file extension).
type Config struct {
	Width     uint32        `mapstructure:"width" yaml:"width"`
	Height    uint32        `mapstructure:"height" yaml:"height"`
	FOV       Real          `mapstructure:"fov" yaml:"fov"`
	Out       string        `mapstructure:"out" yaml:"out,omitempty"`
	Shading   string        `mapstructure:"shading" yaml:"shading,omitempty"`
	Workers   int           `mapstructure:"workers" yaml:"workers,omitempty"`
	Spheres   []SphereCfg   `mapstructure:"spheres" yaml:"spheres,omitempty"`
	Planes    []PlaneCfg    `mapstructure:"planes" yaml:"planes,omitempty"`
	Triangles []TriangleCfg `mapstructure:"triangles" yaml:"triangles,omitempty"`
	Meshes    []MeshCfg     `mapstructure:"meshes" yaml:"meshes,omitempty"`

	// directory relative mesh paths are resolved against
	baseDir string
}

type SphereCfg struct {
	Center Point3 `mapstructure:"center" yaml:"center"`
	Radius Real   `mapstructure:"radius" yaml:"radius"`
	Color  Color  `mapstructure:"color" yaml:"color"`
}

type PlaneCfg struct {
	Origin Point3  `mapstructure:"origin" yaml:"origin"`
	Normal Vector3 `mapstructure:"normal" yaml:"normal"`
	Color  Color   `mapstructure:"color" yaml:"color"`
}

type TriangleCfg struct {
	Point1 Point3 `mapstructure:"point1" yaml:"point1"`
	Point2 Point3 `mapstructure:"point2" yaml:"point2"`
	Point3 Point3 `mapstructure:"point3" yaml:"point3"`
	Color  Color  `mapstructure:"color" yaml:"color"`
}

// Rotation in degrees for config files (friendlier than radians).
type RotationDeg struct {
	Axis string `mapstructure:"axis" yaml:"axis"`
	Deg  Real   `mapstructure:"deg" yaml:"deg"`
}

type MeshCfg struct {
	Path   string        `mapstructure:"path" yaml:"path"`
	Color  Color         `mapstructure:"color" yaml:"color"`
	Center bool          `mapstructure:"center" yaml:"center,omitempty"`
	Rotate []RotationDeg `mapstructure:"rotate" yaml:"rotate,omitempty"`
	Offset Vector3       `mapstructure:"offset" yaml:"offset"`
}

func (r RotationDeg) Radians() (Rotation, error) {
	axis, err := ParseAxis(r.Axis)
	if err != nil {
		return Rotation{}, err
	}
	return Rotation{Axis: axis, Angle: mgl64.DegToRad(r.Deg)}, nil
}

func (c SphereCfg) Build() (*Sphere, error) {
	return NewSphere(c.Center, c.Radius, c.Color)
}

func (c PlaneCfg) Build() (*Plane, error) {
	return NewPlane(c.Origin, c.Normal, c.Color)
}

func (c TriangleCfg) Build() (*Triangle, error) {
	return NewTriangle(c.Point1, c.Point2, c.Point3, c.Color)
}

// Build loads the mesh file and returns its triangles; relative paths are taken
// from baseDir.
func (c MeshCfg) Build(baseDir string) ([]*Triangle, error) {
	if c.Path == "" {
		return nil, errorsmod.Wrap(ErrInvalidConfig, "mesh path is empty")
	}
	tr := MeshTransform{Center: c.Center, Offset: c.Offset}
	for _, rd := range c.Rotate {
		r, err := rd.Radians()
		if err != nil {
			return nil, err
		}
		tr.Rotations = append(tr.Rotations, r)
	}
	path := c.Path
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	g, err := LoadGeo(path)
	if err != nil {
		return nil, err
	}
	return g.Triangles(c.Color, tr)
}

// Scene builds the runtime scene. Primitives are added spheres first, then planes,
// triangles and meshes, each group in file order.
func (c *Config) Scene() (*Scene, error) {
	s, err := NewScene(c.Width, c.Height, c.FOV)
	if err != nil {
		return nil, err
	}
	for i, sc := range c.Spheres {
		p, err := sc.Build()
		if err != nil {
			return nil, errorsmod.Wrapf(err, "spheres[%d]", i)
		}
		s.Add(p)
	}
	for i, pc := range c.Planes {
		p, err := pc.Build()
		if err != nil {
			return nil, errorsmod.Wrapf(err, "planes[%d]", i)
		}
		s.Add(p)
	}
	for i, tc := range c.Triangles {
		p, err := tc.Build()
		if err != nil {
			return nil, errorsmod.Wrapf(err, "triangles[%d]", i)
		}
		s.Add(p)
	}
	for i, mc := range c.Meshes {
		tris, err := mc.Build(c.baseDir)
		if err != nil {
			return nil, errorsmod.Wrapf(err, "meshes[%d]", i)
		}
		for _, t := range tris {
			s.Add(t)
		}
	}
	return s, nil
}

func (c *Config) ShadingMode() (ShadingMode, error) { return ParseShadingMode(c.Shading) }

// LoadConfig reads a scene file and applies defaults.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := decodeConfig(v)
	if err != nil {
		return nil, err
	}
	cfg.baseDir = filepath.Dir(path)
	DebugLog("Loaded config from %s: %dx%d fov=%.2f, %d spheres, %d planes, %d triangles, %d meshes",
		path, cfg.Width, cfg.Height, cfg.FOV, len(cfg.Spheres), len(cfg.Planes), len(cfg.Triangles), len(cfg.Meshes))
	return cfg, nil
}

// DecodeConfig reads a scene in the given format ("json", "yaml", "toml") from r.
// Mesh paths are resolved against the working directory.
func DecodeConfig(r io.Reader, format string) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidConfig, "decode %s: %v", format, err)
	}
	return decodeConfig(v)
}

func decodeConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidConfig, "unmarshal: %v", err)
	}
	// Defaults
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.FOV == 0 {
		cfg.FOV = DefaultFOV
	}
	if cfg.Out == "" {
		cfg.Out = DefaultOut
	}
	if cfg.Shading == "" {
		cfg.Shading = DefaultShading
	}
	if _, err := cfg.ShadingMode(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig writes cfg as YAML.
func SaveConfig(path string, cfg *Config) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// ExampleConfig is the scene written by the init command: two spheres over a
// floor plane and one triangle.
func ExampleConfig() *Config {
	return &Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		FOV:     DefaultFOV,
		Out:     DefaultOut,
		Shading: DefaultShading,
		Spheres: []SphereCfg{
			{Center: Point3{-1.5, 0, -6}, Radius: 1.5, Color: Color{200, 40, 40}},
			{Center: Point3{1.5, 0.5, -7}, Radius: 1.5, Color: Color{40, 200, 40}},
		},
		Planes: []PlaneCfg{
			{Origin: Point3{0, -1.5, 0}, Normal: Vector3{0, 1, 0}, Color: Color{90, 90, 110}},
		},
		Triangles: []TriangleCfg{
			{Point1: Point3{-1, 1.5, -9}, Point2: Point3{1, 1.5, -9}, Point3: Point3{0, 3, -9}, Color: Color{40, 40, 200}},
		},
	}
}
