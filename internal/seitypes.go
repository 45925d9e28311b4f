package internal

import "fmt"

// seiTypeNames maps SEI payload type numbers to their Annex D names,
// 0-54 from H.264 and 128-172 from H.265. The table is shared between
// both codecs since the ranges do not collide.
var seiTypeNames = map[int]string{
	0:  "buffering_period",
	1:  "pic_timing",
	2:  "pan_scan_rect",
	3:  "filler_payload",
	4:  "user_data_registered_itu_t_t35",
	5:  "user_data_unregistered",
	6:  "recovery_point",
	7:  "dec_ref_pic_marking_repetition",
	8:  "spare_pic",
	9:  "scene_info",
	10: "sub_seq_info",
	11: "sub_seq_layer_characteristics",
	12: "sub_seq_characteristics",
	13: "full_frame_freeze",
	14: "full_frame_freeze_release",
	15: "full_frame_snapshot",
	16: "progressive_refinement_segment_start",
	17: "progressive_refinement_segment_end",
	18: "motion_constrained_slice_group_set",
	19: "film_grain_characteristics",
	20: "deblocking_filter_display_preference",
	21: "stereo_video_info",
	22: "post_filter_hint",
	23: "tone_mapping_info",
	24: "scalability_info",
	25: "sub_pic_scalable_layer",
	26: "non_required_layer_rep",
	27: "priority_layer_info",
	28: "layers_not_present",
	29: "layer_dependency_change",
	30: "scalable_nesting",
	31: "base_layer_temporal_hrd",
	32: "quality_layer_integrity_check",
	33: "redundant_pic_property",
	34: "tl0_dep_rep_index",
	35: "tl_switching_point",
	36: "parallel_decoding_info",
	37: "mvc_scalable_nesting",
	38: "view_scalability_info",
	39: "multiview_scene_info",
	40: "multiview_acquisition_info",
	41: "non_required_view_component",
	42: "view_dependency_change",
	43: "operation_points_not_present",
	44: "base_view_temporal_hrd",
	45: "frame_packing_arrangement",
	46: "multiview_view_position",
	47: "display_orientation",
	48: "mvcd_scalable_nesting",
	49: "mvcd_view_scalability_info",
	50: "depth_representation_info",
	51: "three_dimensional_reference_displays_info",
	52: "depth_timing",
	53: "depth_sampling_info",
	54: "constrained_depth_parameter_set_identifier",
	// H.265 specific
	128: "active_parameter_sets",
	129: "decoding_unit_info",
	130: "temporal_sub_layer_zero_index",
	131: "decoded_picture_hash",
	132: "scalable_nesting",
	133: "region_refresh_info",
	134: "no_display",
	135: "time_code",
	136: "mastering_display_colour_volume",
	137: "segmented_rect_frame_packing_arrangement",
	138: "temporal_motion_constrained_tile_sets",
	139: "chroma_resampling_filter_hint",
	140: "knee_function_info",
	141: "colour_remapping_info",
	142: "deinterlaced_field_identification",
	143: "content_light_level_info",
	144: "dependent_rap_indication",
	145: "coded_region_completion",
	146: "alternative_transfer_characteristics",
	147: "ambient_viewing_environment",
	148: "content_colour_volume",
	149: "equirectangular_projection",
	150: "cubemap_projection",
	151: "fisheye_video_info",
	152: "sphere_rotation",
	153: "regionwise_packing",
	154: "omni_viewport",
	155: "regional_nesting",
	156: "mcts_extraction_info_sets",
	157: "mcts_extraction_info_nesting",
	158: "layers_not_present",
	159: "inter_layer_constrained_tile_sets",
	160: "bsp_nesting",
	161: "bsp_initial_arrival_time",
	162: "sub_bitstream_property",
	163: "alpha_channel_info",
	164: "overlay_info",
	165: "temporal_mv_prediction_constraints",
	166: "frame_field_info",
	167: "three_dimensional_reference_displays_info",
	168: "depth_representation_info_sei",
	169: "multiview_scene_info",
	170: "multiview_acquisition_info",
	171: "multiview_view_position",
	172: "alternative_depth_info",
}

// SeiTypeName returns the registered name for an SEI payload type, or a
// synthesized unknown_<N> placeholder.
func SeiTypeName(seiType int) string {
	if name, ok := seiTypeNames[seiType]; ok {
		return name
	}
	return fmt.Sprintf("unknown_%d", seiType)
}
