package mobileassets

import "fmt"

// Project-relative output roots, slash separated.
const (
	AndroidResDir  = "android/app/src/main/res"
	IOSAssetsDir   = "ios/App/App/Assets.xcassets"
	AppIconSet     = "AppIcon.appiconset"
	SplashImageSet = "Splash.imageset"
	SourceAssetDir = "assets"
)

// DefaultSource is the logo every target is generated from.
const DefaultSource = "assets/icon-final.png"

// DefaultSplashSource is the bare logo the splash command centers on its
// screens.
const DefaultSplashSource = "assets/icon-only.png"

// Android launcher file names written into every mipmap density folder.
const (
	LauncherFile   = "ic_launcher.png"
	RoundFile      = "ic_launcher_round.png"
	ForegroundFile = "ic_launcher_foreground.png"
	SplashFile     = "splash.png"
)

// Density is an Android resource qualifier folder and its square icon size.
type Density struct {
	Folder string
	Size   int
}

// AndroidIconSizes are the launcher icon densities.
var AndroidIconSizes = []Density{
	{"mipmap-mdpi", 48},
	{"mipmap-hdpi", 72},
	{"mipmap-xhdpi", 96},
	{"mipmap-xxhdpi", 144},
	{"mipmap-xxxhdpi", 192},
}

// NamedSize is a fixed output file name with its square pixel size.
type NamedSize struct {
	Filename string
	Size     int
}

// IOSIconSizes are the AppIcon.appiconset files. AppIcon-40@3x and
// AppIcon-60@2x are both 120px but separate files.
var IOSIconSizes = []NamedSize{
	{"AppIcon-20@2x.png", 40},
	{"AppIcon-20@3x.png", 60},
	{"AppIcon-29@2x.png", 58},
	{"AppIcon-29@3x.png", 87},
	{"AppIcon-40@2x.png", 80},
	{"AppIcon-40@3x.png", 120},
	{"AppIcon-60@2x.png", 120},
	{"AppIcon-60@3x.png", 180},
	{"AppIcon-76.png", 76},
	{"AppIcon-76@2x.png", 152},
	{"AppIcon-83.5@2x.png", 167},
	{"AppIcon-512@2x.png", 1024},
}

// Screen is a splash resource folder and its canvas size.
type Screen struct {
	Folder        string
	Width, Height int
}

// AndroidSplashSizes are the drawable folders that receive splash.png.
var AndroidSplashSizes = []Screen{
	{"drawable", 480, 800},
	{"drawable-land-mdpi", 480, 320},
	{"drawable-land-hdpi", 800, 480},
	{"drawable-land-xhdpi", 1280, 720},
	{"drawable-land-xxhdpi", 1600, 960},
	{"drawable-land-xxxhdpi", 1920, 1280},
	{"drawable-port-mdpi", 320, 480},
	{"drawable-port-hdpi", 480, 800},
	{"drawable-port-xhdpi", 720, 1280},
	{"drawable-port-xxhdpi", 960, 1600},
	{"drawable-port-xxxhdpi", 1280, 1920},
}

// IOSSplashSize is the universal launch image; one canvas serves every scale.
var IOSSplashSize = Screen{SplashImageSet, 2732, 2732}

// IOSSplashFiles holds the 1x, 2x and 3x copies of the universal splash.
var IOSSplashFiles = []string{
	"splash-2732x2732.png",
	"splash-2732x2732-1.png",
	"splash-2732x2732-2.png",
}

// SourceSplashSize is the square splash kept in assets/ for other tooling.
const SourceSplashSize = 1024

// AppIconContents maps the files of IOSIconSizes to idioms and point sizes.
// It is maintained by hand; keep it in step with IOSIconSizes.
var AppIconContents = NewContents(
	ManifestImage{"AppIcon-20@2x.png", "iphone", "2x", "20x20"},
	ManifestImage{"AppIcon-20@3x.png", "iphone", "3x", "20x20"},
	ManifestImage{"AppIcon-29@2x.png", "iphone", "2x", "29x29"},
	ManifestImage{"AppIcon-29@3x.png", "iphone", "3x", "29x29"},
	ManifestImage{"AppIcon-40@2x.png", "iphone", "2x", "40x40"},
	ManifestImage{"AppIcon-40@3x.png", "iphone", "3x", "40x40"},
	ManifestImage{"AppIcon-60@2x.png", "iphone", "2x", "60x60"},
	ManifestImage{"AppIcon-60@3x.png", "iphone", "3x", "60x60"},
	ManifestImage{"AppIcon-20@2x.png", "ipad", "2x", "20x20"},
	ManifestImage{"AppIcon-29@2x.png", "ipad", "2x", "29x29"},
	ManifestImage{"AppIcon-40@2x.png", "ipad", "2x", "40x40"},
	ManifestImage{"AppIcon-76.png", "ipad", "1x", "76x76"},
	ManifestImage{"AppIcon-76@2x.png", "ipad", "2x", "76x76"},
	ManifestImage{"AppIcon-83.5@2x.png", "ipad", "2x", "83.5x83.5"},
	ManifestImage{"AppIcon-512@2x.png", "ios-marketing", "1x", "1024x1024"},
)

// SplashContents describes IOSSplashFiles.
var SplashContents = NewContents(
	ManifestImage{Filename: "splash-2732x2732.png", Idiom: "universal", Scale: "1x"},
	ManifestImage{Filename: "splash-2732x2732-1.png", Idiom: "universal", Scale: "2x"},
	ManifestImage{Filename: "splash-2732x2732-2.png", Idiom: "universal", Scale: "3x"},
)

// Target is one group of generated assets.
type Target string

const (
	TargetAndroidIcons  Target = "android-icons"
	TargetIOSIcons      Target = "ios-icons"
	TargetAndroidSplash Target = "android-splash"
	TargetIOSSplash     Target = "ios-splash"
	TargetSourceSplash  Target = "source-splash"
)

// AllTargets lists every target in generation order.
var AllTargets = []Target{
	TargetAndroidIcons,
	TargetIOSIcons,
	TargetAndroidSplash,
	TargetIOSSplash,
}

// IconTargets and SplashTargets are the subsets behind the icons and splash commands.
var (
	IconTargets   = []Target{TargetAndroidIcons, TargetIOSIcons}
	SplashTargets = []Target{TargetAndroidSplash, TargetIOSSplash, TargetSourceSplash}
)

func (t Target) Title() string {
	switch t {
	case TargetAndroidIcons:
		return "Android Icons"
	case TargetIOSIcons:
		return "iOS Icons"
	case TargetAndroidSplash:
		return "Android Splash Screens"
	case TargetIOSSplash:
		return "iOS Splash Screens"
	case TargetSourceSplash:
		return "Source Splash Asset"
	default:
		return string(t)
	}
}

// Platform returns "android", "ios" or "" for platform-neutral targets.
func (t Target) Platform() string {
	switch t {
	case TargetAndroidIcons, TargetAndroidSplash:
		return "android"
	case TargetIOSIcons, TargetIOSSplash:
		return "ios"
	default:
		return ""
	}
}

// FilterPlatform keeps the targets of platform ("android", "ios" or "all").
// Platform-neutral targets are always kept.
func FilterPlatform(targets []Target, platform string) ([]Target, error) {
	switch platform {
	case "", "all":
		return targets, nil
	case "android", "ios":
	default:
		return nil, fmt.Errorf("unknown platform %q (want android, ios or all)", platform)
	}
	out := make([]Target, 0, len(targets))
	for _, t := range targets {
		if p := t.Platform(); p == "" || p == platform {
			out = append(out, t)
		}
	}
	return out, nil
}
