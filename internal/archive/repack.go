package archive

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"

	"khtools/internal/binfmt"
)

type packItem struct {
	path string
	hash [16]byte
}

// Repack builds outBase.hed and outBase.pkg from a folder produced by
// Extract. Every sidecar is checked before anything is written: encrypted
// or remastered assets cannot be rebuilt and abort the whole repack. Assets
// are stored raw.
func Repack(ctx context.Context, inDir, outBase string) (err error) {
	manifest, err := LoadManifest(filepath.Join(inDir, ManifestName))
	if err != nil {
		return err
	}

	items := make([]packItem, len(manifest))
	for i, e := range manifest {
		it, err := checkItem(inDir, e)
		if err != nil {
			return err
		}
		items[i] = it
	}

	hedPath, pkgPath := Paths(outBase)
	hed, err := os.Create(hedPath)
	if err != nil {
		return err
	}
	defer hed.Close()
	pkg, err := os.Create(pkgPath)
	if err != nil {
		return err
	}
	defer pkg.Close()

	defer func() {
		if err != nil {
			hed.Close()
			pkg.Close()
			os.Remove(hedPath)
			os.Remove(pkgPath)
		}
	}()

	hw := bufio.NewWriter(hed)
	pw := bufio.NewWriter(pkg)

	var offset int64
	for i, it := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.WithField("file", manifest[i].Path).Info("packing")

		n, err := packAsset(hw, pw, it, offset)
		if err != nil {
			return fmt.Errorf("%s: %w", manifest[i].Path, err)
		}
		offset += n
	}

	if err := hw.Flush(); err != nil {
		return err
	}
	if err := pw.Flush(); err != nil {
		return err
	}

	log.WithField("count", len(items)).Info("repack complete")
	return nil
}

func checkItem(inDir string, e ManifestEntry) (packItem, error) {
	var it packItem
	path, err := within(inDir, e.Path)
	if err != nil {
		return it, err
	}
	it.path = path

	hash, err := hex.DecodeString(e.Hash)
	if err != nil || len(hash) != len(it.hash) {
		return it, fmt.Errorf("%s: invalid hash %q", e.Path, e.Hash)
	}
	copy(it.hash[:], hash)

	sc, err := loadSidecar(it.path)
	if err != nil {
		return it, err
	}
	switch {
	case sc.Encrypt:
		return it, fmt.Errorf("%s: %w: encrypted repack", e.Path, binfmt.ErrUnsupportedFeature)
	case sc.Remastered > 0:
		return it, fmt.Errorf("%s: %w: repack of %d remastered assets", e.Path, binfmt.ErrUnsupportedFeature, sc.Remastered)
	case sc.Compress:
		// compressed payloads are always encrypted in these packages
		return it, fmt.Errorf("%s: %w: compression without encryption", e.Path, binfmt.ErrUnsupportedFeature)
	}
	return it, nil
}

// packAsset appends one raw asset to the package and its record to the
// header, returning the number of package bytes written.
func packAsset(hed, pkg *bufio.Writer, it packItem, offset int64) (int64, error) {
	data, err := os.ReadFile(it.path)
	if err != nil {
		return 0, err
	}
	info, err := os.Stat(it.path)
	if err != nil {
		return 0, err
	}

	length := len(data)
	data = binfmt.Pad16(data, binfmt.Filler)

	envelope := binfmt.AssetHeader{
		DecompressedLength: uint32(length),
		StoredLength:       binfmt.StoredRaw,
		CreationDate:       uint32(info.ModTime().Unix()),
	}
	if err := binfmt.Write(pkg, &envelope); err != nil {
		return 0, err
	}
	if _, err := pkg.Write(data); err != nil {
		return 0, err
	}

	entry := binfmt.HeaderEntry{
		Hash:         it.hash,
		Offset:       uint64(offset),
		StoredLength: uint32(len(data) + binfmt.AssetHeaderSize),
		ActualLength: uint32(len(data)),
	}
	if err := binfmt.Write(hed, &entry); err != nil {
		return 0, err
	}

	return int64(len(data) + binfmt.AssetHeaderSize), nil
}
