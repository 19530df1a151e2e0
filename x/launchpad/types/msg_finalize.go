package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgFinalize{}

// MsgFinalize defines a message to close a funded campaign, distribute
// proceeds, and deploy liquidity to the campaign's venue.
type MsgFinalize struct {
	Creator    string `json:"creator"`
	CampaignId uint64 `json:"campaign_id"`
}

// NewMsgFinalize creates a new MsgFinalize instance
func NewMsgFinalize(creator string, campaignID uint64) *MsgFinalize {
	return &MsgFinalize{
		Creator:    creator,
		CampaignId: campaignID,
	}
}

func (msg *MsgFinalize) Reset()        { *msg = MsgFinalize{} }
func (msg *MsgFinalize) ProtoMessage() {}
func (msg *MsgFinalize) String() string {
	return fmt.Sprintf("MsgFinalize{creator=%s campaign=%d}", msg.Creator, msg.CampaignId)
}

// Route implements the sdk.Msg interface
func (msg MsgFinalize) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgFinalize) Type() string { return "finalize" }

// GetSigners implements the sdk.Msg interface
func (msg MsgFinalize) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgFinalize) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if msg.CampaignId == 0 {
		return sdkerrors.Wrap(ErrCampaignNotFound, "campaign id cannot be zero")
	}
	return nil
}
