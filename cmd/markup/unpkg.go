package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/swdunlop/markup-go/attr"
	"github.com/swdunlop/markup-go/el"
)

func unpkgCmd() *cobra.Command {
	var (
		deferred bool
		timeout  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "unpkg <path>...",
		Short: "Render script or link tags with SRI for packages on unpkg.com",
		Long: `Query unpkg.com for each path, following redirects to the full URL, then output a script or link tag
with SRI information and disabled referrer policy.

  markup unpkg alpinejs
  markup unpkg alpinejs@latest
  markup unpkg alpinejs@3.12.0
  markup unpkg alpinejs/dist/cdn.min.js
  markup unpkg --defer alpinejs@latest/dist/cdn.min.js`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u := unpkg{
				base:     `https://unpkg.com/`,
				client:   &http.Client{Timeout: timeout},
				deferred: deferred,
			}
			var failed int
			for _, path := range args {
				dep, err := u.resolve(cmd.Context(), path)
				if err != nil {
					log.Error().Err(err).Str(`path`, path).Msg(`could not resolve`)
					failed++
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), dep)
			}
			if failed > 0 {
				return fmt.Errorf(`%v of %v paths could not be resolved`, failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&deferred, "defer", false, "Use the defer attribute for <script> tags")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout for each request to unpkg.com")
	return cmd
}

type unpkg struct {
	base     string
	client   *http.Client
	deferred bool
}

func (u unpkg) resolve(ctx context.Context, path string) (string, error) {
	corrected, err := u.resolvePath(ctx, path)
	if err != nil {
		return ``, err
	}
	if path != corrected {
		log.Debug().Str(`path`, path).Str(`resolved`, corrected).Msg(`unpkg redirected`)
		path = corrected
	}
	meta, err := u.fetchMeta(ctx, path)
	if err != nil {
		return ``, err
	}
	return u.render(meta, u.base+path)
}

// render outputs the tag for a file on unpkg.com with its integrity, based on the content type of the file.
func (u unpkg) render(meta *fileMeta, url string) (string, error) {
	contentType := strings.SplitN(meta.Type, `;`, 2)[0]
	switch contentType {
	case `text/javascript`, `application/javascript`:
		return el.Script(attr.Of(
			`defer`, u.deferred,
			`src`, url,
			`integrity`, meta.Integrity,
			`crossorigin`, `anonymous`,
			`referrerpolicy`, `no-referrer`,
		)), nil
	case `text/css`:
		return el.Link(attr.Of(
			`rel`, `stylesheet`,
			`href`, url,
			`integrity`, meta.Integrity,
			`crossorigin`, `anonymous`,
			`referrerpolicy`, `no-referrer`,
		)), nil
	case ``:
		return ``, fmt.Errorf(`no content type; Unpkg has changed its schema again?`)
	default:
		return ``, fmt.Errorf(`unknown content type %q`, contentType)
	}
}

// resolvePath lets unpkg redirect us to the full path, which includes the package, path and version.
func (u unpkg) resolvePath(ctx context.Context, path string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, `GET`, u.base+path, nil)
	if err != nil {
		return path, err
	}
	rsp, err := u.client.Do(req)
	if err != nil {
		return path, err
	}
	defer rsp.Body.Close()
	defer io.Copy(io.Discard, rsp.Body)
	if rsp.StatusCode != http.StatusOK {
		return path, fmt.Errorf(`%v while resolving %v`, rsp.Status, path)
	}
	return strings.TrimPrefix(rsp.Request.URL.Path, `/`), nil
}

func (u unpkg) fetchMeta(ctx context.Context, path string) (*fileMeta, error) {
	m := rxResource.FindStringSubmatch(path)
	if m == nil {
		return nil, fmt.Errorf(`could not parse %q into package, file and version`, path)
	}
	pkg, filePath := m[1]+m[2], m[3]

	var meta packageMeta
	url := u.base + pkg + `/?meta`
	if err := u.getJSON(ctx, &meta, url); err != nil {
		return nil, err
	}
	for i := range meta.Files {
		file := &meta.Files[i]
		if file.Path == filePath {
			return file, nil
		}
	}
	return nil, fmt.Errorf(`could not find path %q in %v`, filePath, url)
}

var rxResource = regexp.MustCompile(`^((?:@[^@/]+/)?[^@/]+)(@[^/@]+)?(/.*)$`)

type packageMeta struct {
	Package string
	Version string
	Prefix  string
	Files   []fileMeta
}

type fileMeta struct {
	Path      string
	Size      int64
	Type      string
	Integrity string
}

func (u unpkg) getJSON(ctx context.Context, v any, url string) error {
	req, err := http.NewRequestWithContext(ctx, `GET`, url, nil)
	if err != nil {
		return err
	}
	rsp, err := u.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = rsp.Body.Close() }()
	if rsp.StatusCode != http.StatusOK {
		return fmt.Errorf(`%v while fetching %v`, rsp.Status, url)
	}
	return json.NewDecoder(rsp.Body).Decode(v)
}
