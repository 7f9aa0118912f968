package gogocodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/parcelops/dispatch/pkg/dispatchpb"
)

func TestCodecMarshallAndUnmarshall_dispatch_type(t *testing.T) {
	// marshal a dispatch object using the custom codec
	c := NewCodec()
	req1 := &dispatchpb.CreateOrderRequest{
		Pickup:   &dispatchpb.GeoPoint{Lat: 52.52, Lng: 13.405},
		Dropoff:  &dispatchpb.GeoPoint{Lat: 52.54, Lng: 13.42},
		Priority: "Urgent",
	}
	data, err := c.Marshal(req1)
	require.NoError(t, err)

	// unmarshal and check if its the same
	req2 := &dispatchpb.CreateOrderRequest{}
	err = c.Unmarshal(data, req2)
	require.NoError(t, err)
	assert.Equal(t, req1, req2)
}

func TestCodecMarshallAndUnmarshall_foreign_type(t *testing.T) {
	// marshal a foreign object (anything outside pkg/dispatchpb) using the custom codec
	c := NewCodec()
	goprotoMessage1 := &emptypb.Empty{}
	data, err := c.Marshal(goprotoMessage1)
	require.NoError(t, err)

	// unmarshal and check if its the same
	goprotoMessage2 := &emptypb.Empty{}
	err = c.Unmarshal(data, goprotoMessage2)
	require.NoError(t, err)
	assert.True(t, proto.Equal(goprotoMessage1, goprotoMessage2))
}

func TestWireCompatibility(t *testing.T) {
	// marshal a dispatch object using the custom codec
	c := NewCodec()
	req1 := &dispatchpb.CreateCourierRequest{
		Name:     "ada",
		Location: &dispatchpb.GeoPoint{Lat: 52.52, Lng: 13.405},
		Capacity: 3,
		Rating:   4.8,
	}
	data, err := c.Marshal(req1)
	require.NoError(t, err)

	// unmarshal this into the generic empty type using golang proto
	var goprotoMessage emptypb.Empty
	err = proto.Unmarshal(data, &goprotoMessage)
	require.NoError(t, err)

	// marshal emptypb using golang proto
	data2, err := proto.Marshal(&goprotoMessage)
	require.NoError(t, err)

	req2 := &dispatchpb.CreateCourierRequest{}
	err = c.Unmarshal(data2, req2)
	require.NoError(t, err)
	assert.Equal(t, req1, req2)
}

func TestCodecMarshal_unsupported_type(t *testing.T) {
	c := NewCodec()

	_, err := c.Marshal(struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported marshal type")
}

func TestCodecUnmarshal_unsupported_type(t *testing.T) {
	c := NewCodec()

	err := c.Unmarshal([]byte{0x01}, struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported unmarshal type")
}
