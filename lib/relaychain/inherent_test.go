// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package relaychain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test error")

func TestCreateParachainInherentData(t *testing.T) {
	t.Parallel()

	relayParent := common.Hash{0xaa}
	const paraID = types.ParaID(2000)
	vd := &types.PersistedValidationData{
		RelayParentNumber:      100,
		RelayParentStorageRoot: common.Hash{0xbb},
	}
	proof := types.NewStorageProof([][]byte{{1}, {2}})
	downward := []types.InboundDownwardMessage{{SentAt: 99, Msg: []byte{1}}}
	horizontal := []types.HrmpChannelContents{{Sender: 3000}, {Sender: 1000}}

	testCases := map[string]struct {
		setup      func(relay *MockInterface)
		expected   *types.ParachainInherentData
		errWrapped error
	}{
		"success": {
			setup: func(relay *MockInterface) {
				relay.EXPECT().PersistedValidationData(gomock.Any(), relayParent, paraID).Return(vd, nil)
				relay.EXPECT().ProveRead(gomock.Any(), relayParent, WellKnownKeys(paraID)).Return(proof, nil)
				relay.EXPECT().DownwardMessages(gomock.Any(), relayParent, paraID).Return(downward, nil)
				relay.EXPECT().InboundHrmpChannelsContents(gomock.Any(), relayParent, paraID).
					Return(append([]types.HrmpChannelContents{}, horizontal...), nil)
			},
			expected: &types.ParachainInherentData{
				ValidationData:     *vd,
				RelayChainState:    proof,
				DownwardMessages:   downward,
				HorizontalMessages: []types.HrmpChannelContents{{Sender: 1000}, {Sender: 3000}},
			},
		},
		"para no longer scheduled": {
			setup: func(relay *MockInterface) {
				relay.EXPECT().PersistedValidationData(gomock.Any(), relayParent, paraID).Return(nil, nil)
			},
			errWrapped: ErrStaleValidationData,
		},
		"validation data changed": {
			setup: func(relay *MockInterface) {
				current := *vd
				current.RelayParentStorageRoot = common.Hash{0xcc}
				relay.EXPECT().PersistedValidationData(gomock.Any(), relayParent, paraID).Return(&current, nil)
			},
			errWrapped: ErrStaleValidationData,
		},
		"proof error": {
			setup: func(relay *MockInterface) {
				relay.EXPECT().PersistedValidationData(gomock.Any(), relayParent, paraID).Return(vd, nil)
				relay.EXPECT().ProveRead(gomock.Any(), relayParent, gomock.Any()).
					Return(types.StorageProof{}, errTest)
			},
			errWrapped: errTest,
		},
		"downward messages error": {
			setup: func(relay *MockInterface) {
				relay.EXPECT().PersistedValidationData(gomock.Any(), relayParent, paraID).Return(vd, nil)
				relay.EXPECT().ProveRead(gomock.Any(), relayParent, gomock.Any()).Return(proof, nil)
				relay.EXPECT().DownwardMessages(gomock.Any(), relayParent, paraID).Return(nil, errTest)
			},
			errWrapped: errTest,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			relay := NewMockInterface(ctrl)
			testCase.setup(relay)

			data, err := CreateParachainInherentData(context.Background(), relay, paraID, relayParent, vd)

			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Equal(t, testCase.expected, data)
		})
	}
}

func TestFollow(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	heads := make(chan Head, 3)
	heads <- Head{Hash: common.Hash{1}, Number: 1}
	heads <- Head{Hash: common.Hash{2}, Number: 2}
	heads <- Head{Hash: common.Hash{3}, Number: 3}
	close(heads)

	vd := &types.PersistedValidationData{RelayParentNumber: 3}

	relay := NewMockInterface(ctrl)
	relay.EXPECT().NewHeads(gomock.Any()).Return((<-chan Head)(heads), nil)
	relay.EXPECT().PersistedValidationData(gomock.Any(), common.Hash{1}, types.ParaID(2000)).
		Return(nil, errTest)
	relay.EXPECT().PersistedValidationData(gomock.Any(), common.Hash{2}, types.ParaID(2000)).
		Return(nil, nil)
	relay.EXPECT().PersistedValidationData(gomock.Any(), common.Hash{3}, types.ParaID(2000)).
		Return(vd, nil)

	out := make(chan Notification, 3)
	err := Follow(context.Background(), relay, 2000, out)
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, Notification{RelayParent: common.Hash{3}, ValidationData: *vd}, <-out)
}

func TestFollow_canceled(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	relay := NewMockInterface(ctrl)
	relay.EXPECT().NewHeads(gomock.Any()).Return((<-chan Head)(make(chan Head)), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := Follow(ctx, relay, 2000, make(chan Notification))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
