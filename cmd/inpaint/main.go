package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/esimov/inpaint"
	"github.com/esimov/inpaint/utils"
)

// Supported image files.
var extensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".tif", ".tiff", ".webp"}

var (
	// Flags
	source      = flag.String("in", "", "Source image, directory or URL")
	maskSource  = flag.String("mask", "", "Mask image or URL; non-black pixels are reconstructed")
	destination = flag.String("out", "", "Destination file or directory")
	radius      = flag.Int("radius", inpaint.DefaultRadius, "Neighborhood radius in pixels")
	quality     = flag.Int("quality", 0, "JPEG output quality (1-100)")
	verbose     = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	if len(*source) == 0 || len(*maskSource) == 0 || len(*destination) == 0 {
		log.Fatal("Usage: inpaint -in input.jpg -mask mask.png -out out.png")
	}
	if *verbose {
		inpaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	p := &inpaint.Processor{
		Radius:  *radius,
		Quality: *quality,
	}

	maskPath, cleanup, err := localPath(*maskSource)
	if err != nil {
		log.Fatalf("Unable to get mask: %v", err)
	}

	toProcess, err := collect(*source, *destination)
	if err != nil {
		cleanup()
		log.Fatal(err)
	}

	inputs := make([]string, 0, len(toProcess))
	for in := range toProcess {
		inputs = append(inputs, in)
	}
	sort.Strings(inputs)

	failed := 0
	for _, in := range inputs {
		out := toProcess[in]
		if err := process(p, in, maskPath, out); err != nil {
			fmt.Fprintf(os.Stderr, "\n%sError inpainting image %s: %v%s\n", utils.ErrorColor, in, err, utils.DefaultColor)
			failed++
		}
	}
	cleanup()
	if failed > 0 {
		os.Exit(1)
	}
}

// process inpaints a single image and reports the outcome.
func process(p *inpaint.Processor, in, maskPath, out string) error {
	path, cleanup, err := localPath(in)
	if err != nil {
		return err
	}
	defer cleanup()

	s := utils.NewSpinner()
	s.Start("Inpainting image...")
	start := time.Now()
	stats, err := p.ProcessFile(path, maskPath, out)
	s.Stop()
	if err != nil {
		return err
	}

	fmt.Printf("\nInpainted in: %s%s\n", utils.SuccessColor, utils.FormatTime(time.Since(start)))
	fmt.Printf("%sTotal number of %s%d %spixels reconstructed\n",
		utils.DefaultColor, utils.SuccessColor, stats.Filled, utils.DefaultColor)
	fmt.Printf("Saved as: %s %s✓%s\n\n", filepath.Base(out), utils.SuccessColor, utils.DefaultColor)
	return nil
}

// collect maps every source image to its destination path.
func collect(source, destination string) (map[string]string, error) {
	toProcess := make(map[string]string)
	if utils.IsURL(source) {
		toProcess[source] = destination
		return toProcess, nil
	}

	fs, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("unable to open source: %w", err)
	}

	switch mode := fs.Mode(); {
	case mode.IsDir():
		// Read destination file or directory.
		dst, err := os.Stat(destination)
		if err != nil {
			return nil, fmt.Errorf("unable to get dir stats: %w", err)
		}
		// Check if the image destination is a directory or a file.
		if !dst.IsDir() {
			return nil, fmt.Errorf("please specify a directory as destination")
		}

		files, err := os.ReadDir(source)
		if err != nil {
			return nil, fmt.Errorf("unable to read dir: %w", err)
		}
		// Range over all the image files and save them into a slice.
		for _, f := range files {
			ext := strings.ToLower(filepath.Ext(f.Name()))
			if f.IsDir() || !supported(ext) {
				continue
			}
			// Get the file base name.
			name := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
			toProcess[filepath.Join(source, f.Name())] = filepath.Join(destination, name+".png")
		}
	case mode.IsRegular():
		toProcess[source] = destination
	default:
		return nil, fmt.Errorf("unsupported source %q: not a file or directory", source)
	}
	if len(toProcess) == 0 {
		return nil, fmt.Errorf("no supported images found in %q", source)
	}
	return toProcess, nil
}

// localPath returns a path on disk for the source, downloading it first
// when it is a URL. The returned function removes any temporary file.
func localPath(source string) (string, func(), error) {
	if !utils.IsURL(source) {
		return source, func() {}, nil
	}
	f, err := utils.DownloadImage(source)
	if err != nil {
		return "", nil, err
	}
	f.Close()
	return f.Name(), func() { os.Remove(f.Name()) }, nil
}

func supported(ext string) bool {
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
