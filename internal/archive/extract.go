package archive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/klauspost/compress/zlib"

	"khtools/internal/binfmt"
	"khtools/internal/egs"
	"khtools/internal/names"
)

type extractor struct {
	pkg    *os.File
	outDir string
}

// Extract unpacks every asset of the archive at path into outDir, writing a
// sidecar per asset and the manifest. The header is validated before any
// output is written.
func Extract(ctx context.Context, path, outDir string) error {
	hedPath, pkgPath := Paths(path)

	entries, err := ReadHeader(hedPath)
	if err != nil {
		return err
	}

	fileMap, err := names.Default()
	if err != nil {
		return err
	}

	pkg, err := os.Open(pkgPath)
	if err != nil {
		return err
	}
	defer pkg.Close()

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	manifest := make(Manifest, 0, len(entries))
	for _, e := range entries {
		manifest = append(manifest, ManifestEntry{Path: fileMap.Lookup(e.Hash), Hash: e.HexHash()})
	}
	if err := SaveManifest(filepath.Join(outDir, ManifestName), manifest); err != nil {
		return err
	}

	x := &extractor{pkg: pkg, outDir: outDir}
	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := manifest[i].Path
		log.WithField("file", name).Info("extracting")
		if err := x.asset(e, name); err != nil {
			return fmt.Errorf("%s at 0x%X: %w", name, e.Offset, err)
		}
	}

	log.WithField("count", len(entries)).Info("extraction complete")
	return nil
}

func (x *extractor) asset(e binfmt.HeaderEntry, name string) error {
	if _, err := x.pkg.Seek(int64(e.Offset), io.SeekStart); err != nil {
		return err
	}

	var seed [egs.SeedSize]byte
	if _, err := io.ReadFull(x.pkg, seed[:]); err != nil {
		return fmt.Errorf("read envelope: %w", err)
	}
	var header binfmt.AssetHeader
	if err := binfmt.Read(bytes.NewReader(seed[:]), &header); err != nil {
		return err
	}
	key := egs.DeriveSchedule(seed)

	remastered := make([]binfmt.RemasteredEntry, header.RemasteredAssetCount)
	for i := range remastered {
		if err := binfmt.ReadTagged(x.pkg, &remastered[i]); err != nil {
			return fmt.Errorf("read remastered entry %d: %w", i, err)
		}
	}

	data, err := x.payload(&key, header.DataLength(), header.Encrypted(), header.Compressed(), header.DecompressedLength, name)
	if err != nil {
		return err
	}

	outPath, err := within(x.outDir, name)
	if err != nil {
		return err
	}
	created := time.Unix(int64(header.CreationDate), 0)
	sidecar := Sidecar{
		Encrypt:    header.Encrypted(),
		Compress:   header.Compressed(),
		Remastered: len(remastered),
	}
	if err := writeAsset(outPath, data, sidecar, created); err != nil {
		return err
	}

	if len(remastered) == 0 {
		return nil
	}

	dir := filepath.Join(filepath.Dir(outPath), "remastered_"+filepath.Base(outPath))
	for i, r := range remastered {
		pos, err := x.pkg.Seek(0, io.SeekCurrent)
		if err != nil {
			return err
		}
		if _, err := x.pkg.Seek(binfmt.Align16(pos), io.SeekStart); err != nil {
			return err
		}

		subName := r.CleanName()
		log.WithFields(log.Fields{"file": name, "asset": subName}).Debug("extracting remastered asset")

		sub, err := x.payload(&key, r.DataLength(), r.Encrypted(), r.Compressed(), r.DecompressedLength, name+"/"+subName)
		if err != nil {
			return fmt.Errorf("remastered asset %d (%s): %w", i, subName, err)
		}
		subPath, err := within(dir, subName)
		if err != nil {
			return fmt.Errorf("remastered asset %d: %w", i, err)
		}
		err = writeAsset(subPath, sub, Sidecar{Encrypt: r.Encrypted(), Compress: r.Compressed()}, created)
		if err != nil {
			return err
		}
	}
	return nil
}

// payload reads n stored bytes at the cursor and undoes the cipher and the
// compression. A decompressed size that differs from the declared one is
// logged and the data is kept.
func (x *extractor) payload(key *egs.Schedule, n int64, encrypted, compressed bool, declared uint32, name string) ([]byte, error) {
	data := make([]byte, n)
	if _, err := io.ReadFull(x.pkg, data); err != nil {
		return nil, fmt.Errorf("read %d payload bytes: %w", n, err)
	}

	if encrypted {
		key.DecryptPayload(data)
	}
	if !compressed {
		return data, nil
	}

	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open zlib stream: %w", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("inflate: %w", err)
	}
	if len(out) != int(declared) {
		log.WithFields(log.Fields{
			"file":     name,
			"expected": declared,
			"actual":   len(out),
		}).Warn(binfmt.ErrLengthMismatch.Error())
	}
	return out, nil
}

func writeAsset(path string, data []byte, sidecar Sidecar, created time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	if err := saveSidecar(path, sidecar); err != nil {
		return err
	}
	return os.Chtimes(path, created, created)
}
