// Package outfits implements the outfit diagnostic commands: a checker that
// counts the items placed in each outfit, and a fetcher that dumps the raw
// server response for a single outfit.
package outfits

// Queries against the outfitItemsByOutfit resolver. The checker only needs
// ids to count rows; the fetcher asks for the full placement and item detail.
const (
	itemCountQuery = "query OutfitItemsByOutfit($outfitId: Int!) { outfitItemsByOutfit(outfitId: $outfitId) { outfit_item_id } }"

	itemDetailQuery = "query OutfitItemsByOutfit($outfitId: Int!) { outfitItemsByOutfit(outfitId: $outfitId) { outfit_item_id outfit_id item_id x_position y_position z_index transform item { item_id name image_url } } }"
)
