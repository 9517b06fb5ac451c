package ui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/multierr"
	"golang.org/x/net/html/charset"
	yaml "gopkg.in/yaml.v3"
)

// Scene file formats.
const (
	FormatYAML = "yaml"
	FormatXML  = "xml"
)

// ErrUnknownFormat is returned for scene files with unrecognized extension.
var ErrUnknownFormat = errors.New("unknown scene format")

// SceneNode describes a node of the tree in a scene file.
type SceneNode struct {
	Name       string           `yaml:"name"`
	Components []SceneComponent `yaml:"components,omitempty"`
	Children   []SceneNode      `yaml:"children,omitempty"`
}

// SceneComponent describes a component, fields not relevant for the
// component type must be empty.
type SceneComponent struct {
	Type     string `yaml:"type"`
	Color    string `yaml:"color,omitempty"`
	Sprite   string `yaml:"sprite,omitempty"`
	Text     string `yaml:"text,omitempty"`
	FontSize int    `yaml:"font_size,omitempty"`
	Classes  string `yaml:"classes,omitempty"`
}

// FormatFromPath detects scene format by file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".xml":
		return FormatXML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// LoadScene reads scene file and builds the tree.
func LoadScene(path string) (*Node, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read scene: %w", err)
	}
	root, err := ParseScene(data, format)
	if err != nil {
		return nil, fmt.Errorf("unable to load scene %s: %w", path, err)
	}
	return root, nil
}

// ParseScene builds the tree from scene description in given format.
func ParseScene(data []byte, format string) (*Node, error) {
	var (
		desc SceneNode
		err  error
	)
	switch format {
	case FormatYAML:
		desc, err = decodeYAML(data)
	case FormatXML:
		desc, err = decodeXML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return desc.Build()
}

func decodeYAML(data []byte) (SceneNode, error) {
	var desc SceneNode
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&desc); err != nil {
		if errors.Is(err, io.EOF) {
			return desc, errors.New("scene is empty")
		}
		return desc, fmt.Errorf("unable to decode scene: %w", err)
	}
	return desc, nil
}

func decodeXML(data []byte) (SceneNode, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
	}
	if err := doc.ReadFromBytes(data); err != nil {
		return SceneNode{}, fmt.Errorf("unable to decode scene: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return SceneNode{}, errors.New("scene is empty")
	}
	return xmlNode(root)
}

// xmlNode converts <Node name="..."> element, child Node elements are
// children and all other elements are components named by tag.
func xmlNode(el *etree.Element) (SceneNode, error) {
	if el.Tag != "Node" {
		return SceneNode{}, fmt.Errorf("%s: expected <Node>, got <%s>", el.GetPath(), el.Tag)
	}
	desc := SceneNode{Name: el.SelectAttrValue("name", "")}

	var errs error
	for _, child := range el.ChildElements() {
		if child.Tag == "Node" {
			n, err := xmlNode(child)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			desc.Children = append(desc.Children, n)
			continue
		}
		c, err := xmlComponent(child)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		desc.Components = append(desc.Components, c)
	}
	return desc, errs
}

func xmlComponent(el *etree.Element) (SceneComponent, error) {
	c := SceneComponent{Type: el.Tag}
	for _, attr := range el.Attr {
		switch attr.Key {
		case "color":
			c.Color = attr.Value
		case "sprite":
			c.Sprite = attr.Value
		case "text":
			c.Text = attr.Value
		case "classes":
			c.Classes = attr.Value
		case "font-size":
			size, err := strconv.Atoi(attr.Value)
			if err != nil {
				return c, fmt.Errorf("%s: bad font-size %q on <%s>", el.GetPath(), attr.Value, el.Tag)
			}
			c.FontSize = size
		default:
			return c, fmt.Errorf("%s: unknown attribute %q on <%s>", el.GetPath(), attr.Key, el.Tag)
		}
	}
	if c.Type == KindText && c.Text == "" {
		c.Text = strings.TrimSpace(el.Text())
	}
	return c, nil
}

// Build creates the tree. All problems found are reported together.
func (d SceneNode) Build() (*Node, error) {
	var errs error
	root := d.build("", &errs)
	if errs != nil {
		return nil, errs
	}
	return root, nil
}

func (d SceneNode) build(parent string, errs *error) *Node {
	path := d.Name
	if parent != "" {
		path = parent + "/" + d.Name
	}
	if d.Name == "" {
		*errs = multierr.Append(*errs, fmt.Errorf("%s: node without name", parent+"/?"))
	}

	n := NewNode(d.Name)
	for _, sc := range d.Components {
		c, err := sc.build()
		if err != nil {
			*errs = multierr.Append(*errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		n.AddComponent(c)
	}
	for _, child := range d.Children {
		n.Add(child.build(path, errs))
	}
	return n
}

func (sc SceneComponent) build() (Component, error) {
	var color *Color
	if sc.Color != "" {
		c, err := parseSceneColor(sc.Color)
		if err != nil {
			return nil, err
		}
		color = &c
	}
	tint := func(g *Graphic) {
		if color != nil {
			g.Color = *color
		}
	}

	switch sc.Type {
	case KindGraphic:
		g := NewGraphic()
		tint(g)
		return g, nil
	case KindImage:
		img := NewImage(sc.Sprite)
		tint(&img.Graphic)
		return img, nil
	case KindText:
		t := NewText(sc.Text)
		if sc.FontSize > 0 {
			t.FontSize = sc.FontSize
		}
		tint(&t.Graphic)
		return t, nil
	case KindShadow:
		s := NewShadow()
		if color != nil {
			s.EffectColor = *color
		}
		return s, nil
	case KindOutline:
		o := NewOutline()
		if color != nil {
			o.EffectColor = *color
		}
		return o, nil
	case KindLayoutGroup:
		return &LayoutGroup{}, nil
	case KindScrollRect:
		return &ScrollRect{Vertical: true, Clip: true}, nil
	case KindClassList:
		return &ClassList{Names: sc.Classes}, nil
	case "":
		return nil, errors.New("component without type")
	default:
		return nil, fmt.Errorf("unknown component type %q", sc.Type)
	}
}

func parseSceneColor(s string) (Color, error) {
	if strings.HasPrefix(s, "#") {
		return ParseHexColor(s)
	}
	if c, ok := NamedColor(s); ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}
