package cmd

import (
	"github.com/seventv/hashparse/argparse"
	"github.com/seventv/hashparse/manifest"
	"github.com/seventv/hashparse/types"
)

// ManifestFuture loads the manifest named by --file once per invocation.
var ManifestFuture = types.FutureFromFuncErr(func() (*manifest.Manifest, error) {
	return manifest.Load(manifestPath())
})

func loadParser() (*argparse.Parser, error) {
	m, err := ManifestFuture.Get()
	if err != nil {
		return nil, err
	}

	return m.Build()
}
