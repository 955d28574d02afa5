package web

import (
	"fmt"
	"os"

	"github.com/peterkuimelis/kingdom/internal/game"
)

// loadKingdoms reads the preset file in file order.
func loadKingdoms(path string) ([]KingdomInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read kingdom file: %w", err)
	}
	kf, err := game.ParseKingdomYAML(data)
	if err != nil {
		return nil, err
	}
	infos := make([]KingdomInfo, 0, len(kf.Kingdoms))
	for i, k := range kf.Kingdoms {
		infos = append(infos, KingdomInfo{Number: i + 1, Name: k.Name, Cards: k.Cards})
	}
	return infos, nil
}
