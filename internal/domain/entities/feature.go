package entities

// Feature describes one of the boolean "common_*" flags a network publishes.
type Feature struct {
	get   func(*Network) bool
	Key   string
	Label string
}

// Enabled reports whether the feature is set on n. A nil network has no features.
func (f Feature) Enabled(n *Network) bool {
	if n == nil || f.get == nil {
		return false
	}
	return f.get(n)
}

var features = []Feature{
	{Key: "common_collection_focus", Label: "Common collection focus", get: func(n *Network) bool { return n.CommonCollectionFocus }},
	{Key: "common_charter", Label: "Common charter", get: func(n *Network) bool { return n.CommonCharter }},
	{Key: "common_sops", Label: "Common SOPS", get: func(n *Network) bool { return n.CommonSOPs }},
	{Key: "common_data_access_policy", Label: "Data access policy", get: func(n *Network) bool { return n.CommonDataAccessPolicy }},
	{Key: "common_sample_access_policy", Label: "Sample access policy", get: func(n *Network) bool { return n.CommonSampleAccessPolicy }},
	{Key: "common_mta", Label: "Common MTA", get: func(n *Network) bool { return n.CommonMTA }},
	{Key: "common_image_access_policy", Label: "Common image access policy", get: func(n *Network) bool { return n.CommonImageAccessPolicy }},
	{Key: "common_image_mta", Label: "Common image MTA", get: func(n *Network) bool { return n.CommonImageMTA }},
	{Key: "common_representation", Label: "Common representation", get: func(n *Network) bool { return n.CommonRepresentation }},
	{Key: "common_url", Label: "Common URL", get: func(n *Network) bool { return n.CommonURL }},
}

// Features returns the network feature flags in display order.
// The returned slice is a copy.
func Features() []Feature {
	out := make([]Feature, len(features))
	copy(out, features)
	return out
}

// FeatureByKey looks up a feature by its record key (e.g. "common_mta").
func FeatureByKey(key string) (Feature, bool) {
	for _, f := range features {
		if f.Key == key {
			return f, true
		}
	}
	return Feature{}, false
}
