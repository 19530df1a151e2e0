package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterLegacyAminoCodec registers the module's concrete types on the
// LegacyAmino codec. Amino is also the module's store codec; this repository
// carries no generated protobuf code.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateCampaign{}, "launchpad/MsgCreateCampaign", nil)
	cdc.RegisterConcrete(&MsgBuy{}, "launchpad/MsgBuy", nil)
	cdc.RegisterConcrete(&MsgFinalize{}, "launchpad/MsgFinalize", nil)
}

// ModuleCdc is the module-wide amino codec.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	ModuleCdc.Seal()
}
