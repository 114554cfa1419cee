package mobileassets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/setanarut/mobileassets/utils"
	"golang.org/x/image/font/opentype"
)

// ErrMissingInput is returned when the source image does not exist.
// Nothing is written in that case.
var ErrMissingInput = errors.New("source image not found")

// Kind selects how an asset is rendered.
type Kind int

const (
	KindIcon Kind = iota
	KindForeground
	KindSplash
	KindTextSplash
)

func (k Kind) String() string {
	switch k {
	case KindIcon:
		return "icon"
	case KindForeground:
		return "foreground"
	case KindSplash:
		return "splash"
	case KindTextSplash:
		return "text-splash"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// SplashMode selects what splash screens show.
type SplashMode string

const (
	SplashLogo SplashMode = "logo"
	SplashText SplashMode = "text"
)

func ParseSplashMode(s string) (SplashMode, error) {
	switch SplashMode(s) {
	case "", SplashLogo:
		return SplashLogo, nil
	case SplashText:
		return SplashText, nil
	default:
		return "", fmt.Errorf("unknown splash mode %q (want logo or text)", s)
	}
}

// Asset is one PNG to produce.
type Asset struct {
	// Project-relative, slash separated.
	Path          string
	Width, Height int
	Kind          Kind
}

// Label is the folder/file form used in progress output.
func (a Asset) Label() string {
	return path.Join(path.Base(path.Dir(a.Path)), path.Base(a.Path))
}

// Manifest is a Contents.json to write after a target's assets.
type Manifest struct {
	// Project-relative asset folder, slash separated.
	Dir      string
	Contents Contents
}

// Job is the ordered work of a single target.
type Job struct {
	Target   Target
	Assets   []Asset
	Manifest *Manifest
}

// Plan expands targets into jobs without touching the filesystem.
func Plan(targets []Target, mode SplashMode) []Job {
	splashKind := KindSplash
	if mode == SplashText {
		splashKind = KindTextSplash
	}

	jobs := make([]Job, 0, len(targets))
	for _, t := range targets {
		job := Job{Target: t}
		switch t {
		case TargetAndroidIcons:
			for _, d := range AndroidIconSizes {
				dir := path.Join(AndroidResDir, d.Folder)
				job.Assets = append(job.Assets,
					Asset{path.Join(dir, LauncherFile), d.Size, d.Size, KindIcon},
					Asset{path.Join(dir, RoundFile), d.Size, d.Size, KindIcon},
					Asset{path.Join(dir, ForegroundFile), d.Size, d.Size, KindForeground},
				)
			}
		case TargetIOSIcons:
			dir := path.Join(IOSAssetsDir, AppIconSet)
			for _, n := range IOSIconSizes {
				job.Assets = append(job.Assets, Asset{path.Join(dir, n.Filename), n.Size, n.Size, KindIcon})
			}
			job.Manifest = &Manifest{Dir: dir, Contents: AppIconContents}
		case TargetAndroidSplash:
			for _, s := range AndroidSplashSizes {
				job.Assets = append(job.Assets, Asset{path.Join(AndroidResDir, s.Folder, SplashFile), s.Width, s.Height, splashKind})
			}
		case TargetIOSSplash:
			dir := path.Join(IOSAssetsDir, SplashImageSet)
			for _, name := range IOSSplashFiles {
				job.Assets = append(job.Assets, Asset{path.Join(dir, name), IOSSplashSize.Width, IOSSplashSize.Height, splashKind})
			}
			job.Manifest = &Manifest{Dir: dir, Contents: SplashContents}
		case TargetSourceSplash:
			name := "splash-screen.png"
			if mode == SplashText {
				name = "splash.png"
			}
			job.Assets = append(job.Assets, Asset{path.Join(SourceAssetDir, name), SourceSplashSize, SourceSplashSize, splashKind})
		}
		jobs = append(jobs, job)
	}
	return jobs
}

// Report lists what a run wrote, joined with the generator Root.
type Report struct {
	Files     []string
	Manifests []string
}

// Generator renders every planned asset from the icon source and, for logo
// splashes, an optional separate splash logo.
type Generator struct {
	// Project root all outputs are relative to.
	Root string
	// Source image, relative to Root unless absolute.
	Source string
	// Logo for logo splash screens, relative to Root unless absolute.
	// Empty means Source.
	SplashSource string
	Options      Options
	Mode         SplashMode
	Text         TextOptions
	// Progress output. Nil means log.Default().
	Logger *log.Logger
	// Plan and log but write nothing.
	DryRun bool

	comp       *Compositor
	splashComp *Compositor
	font       *opentype.Font
	encoded    map[renderKey][]byte
}

type renderKey struct {
	kind Kind
	w, h int
}

func NewGenerator(root string) *Generator {
	return &Generator{
		Root:    root,
		Source:  DefaultSource,
		Options: DefaultOptions(),
		Mode:    SplashLogo,
		Text:    DefaultTextOptions(),
	}
}

// SourcePath resolves Source against Root.
func (g *Generator) SourcePath() string {
	return g.resolve(g.Source)
}

// SplashSourcePath resolves SplashSource against Root, falling back to
// SourcePath.
func (g *Generator) SplashSourcePath() string {
	if g.SplashSource == "" {
		return g.SourcePath()
	}
	return g.resolve(g.SplashSource)
}

func (g *Generator) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(g.Root, p)
}

func (g *Generator) logger() *log.Logger {
	if g.Logger == nil {
		return log.Default()
	}
	return g.Logger
}

// Load checks that the source exists and decodes it. It is called by Run
// and only needs calling directly to inspect the source beforehand.
func (g *Generator) Load() (image.Image, error) {
	comp, err := g.loadCompositor(g.SourcePath())
	if err != nil {
		return nil, err
	}
	g.comp = comp
	return comp.Source, nil
}

// loadCompositor decodes src and resolves an auto background from it.
func (g *Generator) loadCompositor(src string) (*Compositor, error) {
	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, src)
		}
		return nil, fmt.Errorf("stat source: %w", err)
	}
	img, err := utils.ReadImage(src)
	if err != nil {
		return nil, err
	}

	opt := g.Options
	if opt.AutoBackground {
		palette := utils.ExtractPalette(img, 1, opt.PaletteMethod)
		if len(palette) > 0 {
			opt.Background = utils.ToNRGBA(palette[0].Color)
		}
	}
	return NewCompositor(img, opt), nil
}

// Run generates targets in order. Every source the targets need is loaded
// first; if one is missing the run stops with ErrMissingInput before
// anything is created.
func (g *Generator) Run(targets ...Target) (*Report, error) {
	jobs := Plan(targets, g.Mode)
	lg := g.logger()
	if err := g.loadSources(jobs, lg); err != nil {
		return nil, err
	}
	g.encoded = make(map[renderKey][]byte)

	report := &Report{}
	for _, job := range jobs {
		lg.Printf("=== Generating %s ===", job.Target.Title())
		for _, a := range job.Assets {
			out := filepath.Join(g.Root, filepath.FromSlash(a.Path))
			if !g.DryRun {
				data, err := g.render(a)
				if err != nil {
					return report, fmt.Errorf("%s: %w", a.Path, err)
				}
				if err := utils.AtomicWrite(out, data); err != nil {
					return report, fmt.Errorf("write %s: %w", out, err)
				}
			}
			report.Files = append(report.Files, out)
			lg.Printf("  ✓ %s (%dx%d)", a.Label(), a.Width, a.Height)
		}
		if job.Manifest == nil {
			continue
		}
		dir := filepath.Join(g.Root, filepath.FromSlash(job.Manifest.Dir))
		out := filepath.Join(dir, ContentsFileName)
		if !g.DryRun {
			var err error
			if out, err = WriteContents(dir, job.Manifest.Contents); err != nil {
				return report, err
			}
		}
		report.Manifests = append(report.Manifests, out)
		lg.Printf("  ✓ %s", ContentsFileName)
	}
	return report, nil
}

// loadSources builds the icon and splash compositors the jobs need. Text
// splashes only read the splash logo for an auto background, and fall back
// to Options.Background when it is missing.
func (g *Generator) loadSources(jobs []Job, lg *log.Logger) error {
	g.comp, g.splashComp = nil, nil
	kinds := make(map[Kind]bool)
	for _, job := range jobs {
		for _, a := range job.Assets {
			kinds[a.Kind] = true
		}
	}

	if kinds[KindIcon] || kinds[KindForeground] {
		src, err := g.Load()
		if err != nil {
			return err
		}
		b := src.Bounds()
		lg.Printf("Loaded source %s (%dx%d, %s)", g.SourcePath(), b.Dx(), b.Dy(), utils.Mode(src))
	}

	splashPath := g.SplashSourcePath()
	needSplash := kinds[KindSplash] || (kinds[KindTextSplash] && g.Options.AutoBackground)
	switch {
	case !needSplash:
	case g.comp != nil && splashPath == g.SourcePath():
		g.splashComp = g.comp
	default:
		comp, err := g.loadCompositor(splashPath)
		if errors.Is(err, ErrMissingInput) && !kinds[KindSplash] {
			lg.Printf("background auto ignored: %s not found, using %s",
				splashPath, utils.HexString(g.Options.Background))
			return nil
		}
		if err != nil {
			return err
		}
		g.splashComp = comp
		b := comp.Source.Bounds()
		lg.Printf("Loaded splash logo %s (%dx%d, %s)", splashPath, b.Dx(), b.Dy(), utils.Mode(comp.Source))
	}
	return nil
}

// render encodes a; assets with identical kind and size share one encoding.
func (g *Generator) render(a Asset) ([]byte, error) {
	key := renderKey{a.Kind, a.Width, a.Height}
	if data, ok := g.encoded[key]; ok {
		return data, nil
	}

	var img image.Image
	switch a.Kind {
	case KindIcon:
		img = g.comp.Icon(a.Width)
	case KindForeground:
		img = g.comp.Foreground(a.Width)
	case KindSplash:
		img = g.splashComp.Splash(a.Width, a.Height)
	case KindTextSplash:
		if g.font == nil {
			f, err := ParseFont(g.Text.Font)
			if err != nil {
				return nil, err
			}
			g.font = f
		}
		canvas, err := drawText(a.Width, a.Height, g.background(), g.font, g.Text)
		if err != nil {
			return nil, err
		}
		img = canvas
	default:
		return nil, fmt.Errorf("unknown asset kind %v", a.Kind)
	}

	data, err := utils.EncodePNG(img, g.Options.Compression)
	if err != nil {
		return nil, err
	}
	g.encoded[key] = data
	return data, nil
}

func (g *Generator) background() color.NRGBA {
	if g.splashComp != nil {
		return g.splashComp.Options().Background
	}
	return g.Options.Background
}
