package run

import "encoding/json"

// The route and split sequences are persisted as JSON blobs on the run
// record. Encoding must round-trip losslessly since it is the only stored
// form of the route.

func EncodeRoute(route []RouteSample) ([]byte, error) {
	return json.Marshal(route)
}

func DecodeRoute(data []byte) ([]RouteSample, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var route []RouteSample
	if err := json.Unmarshal(data, &route); err != nil {
		return nil, err
	}
	return route, nil
}

func EncodeSplits(splits []Split) ([]byte, error) {
	return json.Marshal(splits)
}

func DecodeSplits(data []byte) ([]Split, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var splits []Split
	if err := json.Unmarshal(data, &splits); err != nil {
		return nil, err
	}
	return splits, nil
}
