package apkio

import (
	"fmt"

	"github.com/tdmod/tdmod/bdata"
	"github.com/tdmod/tdmod/catalog"
	"github.com/tdmod/tdmod/pack"
)

// LoadCatalog reads every pack/list pair a Source exposes and assembles
// them into a catalog.Packs, ready for the overlay engine to mutate.
func LoadCatalog(src Source) (*catalog.Packs, error) {
	pairs, err := src.PacksLists()
	if err != nil {
		return nil, err
	}
	cc := src.CountryCode()
	gv := src.GameVersion()
	packs := catalog.New(cc, gv)
	for _, pair := range pairs {
		pf, err := pack.FromPackFile(bdata.New(pair.ListData), bdata.New(pair.PackData), cc, pair.Name, gv, src.Key(), src.IV())
		if err != nil {
			return nil, fmt.Errorf("apkio: loading pack %q: %w", pair.Name, err)
		}
		packs.AddPack(pf)
	}
	return packs, nil
}

// SaveCatalog re-emits every modified pack in packs and writes the
// resulting pack/list pairs back through src.
func SaveCatalog(src Source, packs *catalog.Packs) error {
	lists, err := packs.ToPacksLists(src.Key(), src.IV())
	if err != nil {
		return fmt.Errorf("apkio: re-emitting packs: %w", err)
	}
	for _, pl := range lists {
		if err := src.WritePackList(pl.Name, pl.PackData.Bytes(), pl.ListData.Bytes()); err != nil {
			return fmt.Errorf("apkio: writing pack %q: %w", pl.Name, err)
		}
	}
	return nil
}
